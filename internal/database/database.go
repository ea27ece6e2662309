package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the path to the single shared database
func DBPath() string {
	return filepath.Join("data", "regatta-terminal.db")
}

// EnsureSchema ensures the user-data tables exist: saved wind/tide
// snapshots per venue, and user-added venue current profiles.
func EnsureSchema(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS wind_snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			venue TEXT NOT NULL,
			min_kn REAL NOT NULL,
			max_kn REAL NOT NULL,
			direction TEXT,
			saved_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_wind_snapshots_venue ON wind_snapshots(venue, saved_at);

		CREATE TABLE IF NOT EXISTS tide_snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			venue TEXT NOT NULL,
			state TEXT NOT NULL,
			height_m REAL NOT NULL,
			direction TEXT,
			saved_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tide_snapshots_venue ON tide_snapshots(venue, saved_at);

		CREATE TABLE IF NOT EXISTS venue_profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			max_neap_current_kn REAL NOT NULL,
			max_spring_current_kn REAL NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_venue_profiles_name ON venue_profiles(name);
	`)
	if err != nil {
		return fmt.Errorf("creating user data tables: %w", err)
	}

	return nil
}
