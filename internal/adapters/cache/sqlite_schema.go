package cache

import "database/sql"

// InitSchema creates the persistent route-cache table if it does not
// already exist. Safe to call on every startup.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS route_cache (
		cache_key        TEXT PRIMARY KEY,
		distance_miles   REAL NOT NULL,
		duration_hours   REAL NOT NULL,
		geometry_json    TEXT NOT NULL
	);
	`)
	return err
}
