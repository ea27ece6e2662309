package venues

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// LoadProfiles returns the user-added venue profiles stored in the
// shared database, in insertion order. An absent table yields an empty
// list, not an error; the built-in catalog always stands on its own.
func LoadProfiles(dbPath string) ([]AreaProfile, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening venue database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='venue_profiles'").Scan(&count); err != nil || count == 0 {
		return nil, nil
	}

	rows, err := db.Query(`
		SELECT name, latitude, longitude, max_neap_current_kn, max_spring_current_kn
		FROM venue_profiles
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying venue profiles: %w", err)
	}
	defer rows.Close()

	var profiles []AreaProfile
	for rows.Next() {
		var p AreaProfile
		if err := rows.Scan(&p.Name, &p.Lat, &p.Lng, &p.MaxNeapCurrentKn, &p.MaxSpringCurrentKn); err != nil {
			continue
		}
		// Enforce the catalog invariant on user data too.
		if p.MaxNeapCurrentKn < 0 {
			p.MaxNeapCurrentKn = 0
		}
		if p.MaxSpringCurrentKn < p.MaxNeapCurrentKn {
			p.MaxSpringCurrentKn = p.MaxNeapCurrentKn
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// SaveProfile inserts or replaces a user venue profile by name
func SaveProfile(dbPath string, p AreaProfile) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening venue database: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO venue_profiles (name, latitude, longitude, max_neap_current_kn, max_spring_current_kn)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			max_neap_current_kn = excluded.max_neap_current_kn,
			max_spring_current_kn = excluded.max_spring_current_kn
	`, p.Name, p.Lat, p.Lng, p.MaxNeapCurrentKn, p.MaxSpringCurrentKn)
	if err != nil {
		return fmt.Errorf("saving venue profile %s: %w", p.Name, err)
	}
	return nil
}
