package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of idempotent SQL statements.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		title          TEXT    NOT NULL CHECK (title <> ''),
		price          INTEGER NOT NULL CHECK (price >= 0),
		location       TEXT    NOT NULL CHECK (location <> ''),
		bedrooms       INTEGER NOT NULL DEFAULT 0 CHECK (bedrooms >= 0),
		bathrooms      INTEGER NOT NULL DEFAULT 0 CHECK (bathrooms >= 0),
		sqft           INTEGER NOT NULL DEFAULT 0 CHECK (sqft >= 0),
		property_type  TEXT    NOT NULL CHECK (property_type IN ('apartment', 'house', 'condo', 'villa')),
		image_ref      TEXT    NOT NULL DEFAULT '',
		featured       INTEGER NOT NULL DEFAULT 0,
		description    TEXT    NOT NULL DEFAULT '',
		amenities_json TEXT    NOT NULL DEFAULT '[]',
		created_at     DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_type ON listings (property_type)`,
}

// migrate runs all migrations in order inside one transaction.
func migrate(db *sql.DB) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting migrations: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (also failed to roll back: %v)", err, rbErr)
			}
		}
	}()

	for i, m := range migrations {
		if _, err := tx.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migrations: %w", err)
	}
	return nil
}
