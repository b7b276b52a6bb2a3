package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/newsroom"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// requireSnapshot returns ENOTFOUND unless the named collection has been
// saved before.
func requireSnapshot(ctx context.Context, db *DB, name string) error {
	var savedAt string
	err := db.QueryRowContext(ctx, "SELECT saved_at FROM snapshots WHERE name = ?", name).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return newsroom.Errorf(newsroom.ENOTFOUND, "no %s saved", name)
	}
	return err
}

// replaceAll runs insert inside a transaction after clearing table, and
// marks the collection as saved.
func replaceAll(ctx context.Context, db *DB, table string, now time.Time, insert func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return err
	}
	if err := insert(tx); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (name, saved_at) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET saved_at = excluded.saved_at
	`, table, formatTime(now)); err != nil {
		return err
	}
	return tx.Commit()
}
