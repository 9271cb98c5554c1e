package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"leadhunt-engine/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Workbook keeps leads in one sheet of an .xlsx file. Row 1 is the header;
// every append opens the file, writes after the last used row and saves.
type Workbook struct {
	path  string
	sheet string
}

// OpenWorkbook creates the file and/or sheet with a header row if missing.
func OpenWorkbook(path, sheet string) (*Workbook, error) {
	if sheet == "" {
		sheet = "Sheet1"
	}
	w := &Workbook{path: path, sheet: sheet}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		f := excelize.NewFile()
		defer f.Close()
		if sheet != "Sheet1" {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
			}
			if err := f.DeleteSheet("Sheet1"); err != nil {
				return nil, err
			}
		}
		if err := writeHeader(f, sheet); err != nil {
			return nil, err
		}
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("create workbook %s: %w", path, err)
		}
		return w, nil
	} else if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		if err := writeHeader(f, sheet); err != nil {
			return nil, err
		}
		if err := f.Save(); err != nil {
			return nil, fmt.Errorf("save workbook %s: %w", path, err)
		}
	}
	return w, nil
}

func (w *Workbook) ProfileURLs(ctx context.Context) ([]string, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(w.sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", w.sheet, err)
	}
	return profileURLColumn(rows), nil
}

func (w *Workbook) AppendLeads(ctx context.Context, leads []domain.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(w.sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", w.sheet, err)
	}

	next := len(rows) + 1
	for i, l := range leads {
		cell, err := excelize.CoordinatesToCellName(1, next+i)
		if err != nil {
			return err
		}
		row := toCells(l.Row())
		if err := f.SetSheetRow(w.sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", next+i, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("save workbook %s: %w", w.path, err)
	}
	return nil
}

func (w *Workbook) Close() error { return nil }

func writeHeader(f *excelize.File, sheet string) error {
	header := toCells(domain.Columns)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

func toCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// profileURLColumn finds the "Profile URL" column by header name and returns
// its non-empty values. Tables without that header fall back to the
// canonical position.
func profileURLColumn(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	col := 5
	for i, h := range rows[0] {
		if h == domain.ProfileURLColumn {
			col = i
			break
		}
	}

	var out []string
	for _, r := range rows[1:] {
		if col < len(r) && r[col] != "" {
			out = append(out, r[col])
		}
	}
	return out
}
