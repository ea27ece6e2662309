// Package snapshots persists condensed wind and tide observations per
// venue, so the next run has a saved-snapshot source when live data is
// unavailable.
package snapshots

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/database"
	"github.com/ngmaloney/regatta-terminal/internal/models"
	_ "modernc.org/sqlite"
)

// Store reads and writes saved snapshots in the shared database
type Store struct {
	db *sql.DB
}

// Open opens a snapshot store over the database at dbPath, ensuring
// the schema exists.
func Open(dbPath string) (*Store, error) {
	if err := database.EnsureSchema(dbPath); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")
	return &Store{db: db}, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveWindRange records a condensed wind range for a venue
func (s *Store) SaveWindRange(venue string, r models.WindRange, savedAt time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO wind_snapshots (venue, min_kn, max_kn, direction, saved_at) VALUES (?, ?, ?, ?, ?)",
		venue, r.MinKn, r.MaxKn, r.Direction, savedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving wind snapshot: %w", err)
	}
	return nil
}

// LatestWindRange returns the most recent saved wind range for a
// venue, or nil when none has been saved.
func (s *Store) LatestWindRange(venue string) (*models.WindRange, error) {
	var r models.WindRange
	err := s.db.QueryRow(
		"SELECT min_kn, max_kn, COALESCE(direction, '') FROM wind_snapshots WHERE venue = ? ORDER BY saved_at DESC, id DESC LIMIT 1",
		venue,
	).Scan(&r.MinKn, &r.MaxKn, &r.Direction)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading wind snapshot: %w", err)
	}
	return &r, nil
}

// SaveTideSnapshot records a coarse tide observation for a venue
func (s *Store) SaveTideSnapshot(venue string, snap models.TideSnapshot) error {
	_, err := s.db.Exec(
		"INSERT INTO tide_snapshots (venue, state, height_m, direction, saved_at) VALUES (?, ?, ?, ?, ?)",
		venue, string(snap.State), snap.HeightM, snap.Direction, snap.SavedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving tide snapshot: %w", err)
	}
	return nil
}

// LatestTideSnapshot returns the most recent saved tide snapshot for a
// venue, or nil when none has been saved.
func (s *Store) LatestTideSnapshot(venue string) (*models.TideSnapshot, error) {
	var snap models.TideSnapshot
	var state string
	err := s.db.QueryRow(
		"SELECT state, height_m, COALESCE(direction, ''), saved_at FROM tide_snapshots WHERE venue = ? ORDER BY saved_at DESC, id DESC LIMIT 1",
		venue,
	).Scan(&state, &snap.HeightM, &snap.Direction, &snap.SavedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading tide snapshot: %w", err)
	}
	snap.State = models.TideState(state)
	return &snap, nil
}
