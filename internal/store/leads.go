package store

import (
	"context"
	"fmt"

	"leadhunt-engine/internal/domain"
)

// ProfileURLs returns every stored profile URL, used once per run to seed
// the dedup set.
func (d *DB) ProfileURLs(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.QueryContext(ctx, `SELECT profile_url FROM leads ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("select profile urls: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// AppendLeads inserts the batch in order inside one transaction. It never
// updates or deletes and does no dedup of its own.
func (d *DB) AppendLeads(ctx context.Context, leads []domain.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO leads(name, username, platform, bio, open_to_work, profile_url, keyword, discovered_on, contacted, notes)
VALUES(?,?,?,?,?,?,?,?,?,?);`)
	if err != nil {
		return fmt.Errorf("prepare append: %w", err)
	}
	defer stmt.Close()

	for _, l := range leads {
		if _, err := stmt.ExecContext(ctx,
			l.Name,
			l.Username,
			string(l.Platform),
			l.Bio,
			boolInt(l.OpenToWork),
			l.ProfileURL,
			l.Keyword,
			l.DiscoveredOn.Format(domain.DateLayout),
			boolInt(l.Contacted),
			l.Notes,
		); err != nil {
			return fmt.Errorf("insert lead %s: %w", l.ProfileURL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
