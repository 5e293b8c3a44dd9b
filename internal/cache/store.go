// Package cache is a small SQLite-backed persistence layer for price
// lookups: open a database/sql handle against modernc.org/sqlite, apply
// an embedded schema, and drive it through plain parameterized queries
// (QueryRowContext/ExecContext) rather than an ORM.
package cache

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const embeddedSchema = `
CREATE TABLE IF NOT EXISTS card_prices (
	name       TEXT PRIMARY KEY,
	price_cents INTEGER NOT NULL,
	known      INTEGER NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// Store is a persistent, on-disk price cache shared across composition
// runs, unlike priceapi.Gate's in-memory per-run cache.
type Store struct {
	db *sql.DB
}

// Open creates or attaches to a SQLite database at path (":memory:" is
// valid for tests) and applies the embedded schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %q: %w", path, err)
	}
	if _, err := db.Exec(embeddedSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns a cached price for name, and whether a row existed at all
// (distinct from whether the cached price itself was Known).
func (s *Store) Get(ctx context.Context, name string) (priceCents int64, known bool, found bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT price_cents, known FROM card_prices WHERE name = ?`, name)
	var knownInt int64
	if err := row.Scan(&priceCents, &knownInt); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, false, nil
		}
		return 0, false, false, fmt.Errorf("cache: get %q: %w", name, err)
	}
	return priceCents, knownInt != 0, true, nil
}

// Put upserts a cached price for name.
func (s *Store) Put(ctx context.Context, name string, priceCents int64, known bool) error {
	knownInt := int64(0)
	if known {
		knownInt = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO card_prices (name, price_cents, known, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(name) DO UPDATE SET price_cents = excluded.price_cents, known = excluded.known, updated_at = excluded.updated_at
	`, name, priceCents, knownInt)
	if err != nil {
		return fmt.Errorf("cache: put %q: %w", name, err)
	}
	return nil
}
