package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"leadhunt-engine/internal/domain"
)

// CSVFile keeps leads in a flat CSV file with the canonical header.
type CSVFile struct {
	path string
}

func OpenCSV(path string) (*CSVFile, error) {
	c := &CSVFile{path: path}
	if _, err := os.Stat(path); err == nil {
		return c, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create csv %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(domain.Columns); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return c, nil
}

func (c *CSVFile) ProfileURLs(ctx context.Context) ([]string, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", c.path, err)
	}
	return profileURLColumn(rows), nil
}

func (c *CSVFile) AppendLeads(ctx context.Context, leads []domain.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open csv %s: %w", c.path, err)
	}
	defer f.Close()

	if err := terminateLastLine(f); err != nil {
		return fmt.Errorf("append csv %s: %w", c.path, err)
	}

	w := csv.NewWriter(f)
	for _, l := range leads {
		if err := w.Write(l.Row()); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append csv %s: %w", c.path, err)
	}
	return f.Sync()
}

func (c *CSVFile) Close() error { return nil }

// terminateLastLine adds the newline some spreadsheet tools leave off, so
// the next row does not land on the end of the last one.
func terminateLastLine(f *os.File) error {
	st, err := f.Stat()
	if err != nil || st.Size() == 0 {
		return err
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, st.Size()-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.Write([]byte("\n"))
	return err
}
