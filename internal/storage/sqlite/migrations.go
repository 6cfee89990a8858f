package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Wishlists are stored as documents: the item list and the reservation
// ledger are JSON attributes of a single row, so a reservation's dual
// update lands in one atomic write. The legacy wishlist lives in its
// own single-row table under a fixed key.
const schema = `
CREATE TABLE IF NOT EXISTS wishlists (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    items TEXT NOT NULL DEFAULT '[]',
    ledger TEXT NOT NULL DEFAULT '{}',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS legacy_wishlist (
    key TEXT PRIMARY KEY,
    items TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_wishlists_created_at ON wishlists(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
