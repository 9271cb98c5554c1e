package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"leadhunt-engine/internal/domain"

	"github.com/gofrs/flock"
)

const (
	KindSQLite = "sqlite"
	KindXLSX   = "xlsx"
	KindCSV    = "csv"
)

// ErrLocked means another process holds the store.
var ErrLocked = errors.New("lead store is locked by another run")

// LeadStore is the append-only table every backend implements.
type LeadStore interface {
	ProfileURLs(ctx context.Context) ([]string, error)
	AppendLeads(ctx context.Context, leads []domain.Lead) error
	Close() error
}

var (
	_ LeadStore = (*DB)(nil)
	_ LeadStore = (*Workbook)(nil)
	_ LeadStore = (*CSVFile)(nil)
)

// OpenLeadStore opens the backend named by kind. sheet only applies to xlsx.
func OpenLeadStore(kind, path, sheet string) (LeadStore, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindSQLite:
		return Open(path)
	case KindXLSX:
		return OpenWorkbook(path, sheet)
	case KindCSV:
		return OpenCSV(path)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}

// Lock takes an exclusive, non-blocking lock next to the store file so only
// one process appends at a time. Call the returned func to release it.
func Lock(path string) (unlock func() error, err error) {
	fl := flock.New(path + ".lock")
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return fl.Unlock, nil
}
