package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the ordered schema statements. Every statement is
// idempotent so the full list re-runs safely on each open.
//
// seq is AUTOINCREMENT: it records insertion order, which the price
// repository uses as the stable tie-break between records sharing a date.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS price_observations (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT NOT NULL UNIQUE,
		commodity   TEXT NOT NULL,
		market      TEXT NOT NULL,
		state       TEXT NOT NULL,
		min_price   REAL NOT NULL CHECK(min_price >= 0),
		max_price   REAL NOT NULL CHECK(max_price >= 0),
		modal_price REAL NOT NULL CHECK(modal_price >= 0),
		date        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_price_obs_commodity
		ON price_observations(commodity)`,
	`CREATE INDEX IF NOT EXISTS idx_price_obs_market
		ON price_observations(market)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
