package venues

import (
	"path/filepath"
	"testing"

	"github.com/ngmaloney/regatta-terminal/internal/database"
)

func testDBPath(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "venues.db")
	if err := database.EnsureSchema(p); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	return p
}

func TestSaveAndLoadProfiles(t *testing.T) {
	dbPath := testDBPath(t)

	p := AreaProfile{Name: "Falmouth Bay", Lat: 50.13, Lng: -5.03, MaxNeapCurrentKn: 0.5, MaxSpringCurrentKn: 1.1}
	if err := SaveProfile(dbPath, p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	got, err := LoadProfiles(dbPath)
	if err != nil {
		t.Fatalf("LoadProfiles() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d profiles, want 1", len(got))
	}
	if got[0] != p {
		t.Errorf("got %+v, want %+v", got[0], p)
	}
}

func TestSaveProfile_UpsertsByName(t *testing.T) {
	dbPath := testDBPath(t)

	first := AreaProfile{Name: "Falmouth Bay", Lat: 50.13, Lng: -5.03, MaxNeapCurrentKn: 0.5, MaxSpringCurrentKn: 1.1}
	second := first
	second.MaxSpringCurrentKn = 1.4

	if err := SaveProfile(dbPath, first); err != nil {
		t.Fatal(err)
	}
	if err := SaveProfile(dbPath, second); err != nil {
		t.Fatal(err)
	}

	got, err := LoadProfiles(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d profiles after upsert, want 1", len(got))
	}
	if got[0].MaxSpringCurrentKn != 1.4 {
		t.Errorf("spring max = %v, want updated 1.4", got[0].MaxSpringCurrentKn)
	}
}

func TestLoadProfiles_InvariantRepaired(t *testing.T) {
	dbPath := testDBPath(t)

	// A profile saved with spring below neap must come back repaired.
	bad := AreaProfile{Name: "Backwards Bay", Lat: 10, Lng: 10, MaxNeapCurrentKn: 2.0, MaxSpringCurrentKn: 1.0}
	if err := SaveProfile(dbPath, bad); err != nil {
		t.Fatal(err)
	}

	got, err := LoadProfiles(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d profiles, want 1", len(got))
	}
	if got[0].MaxSpringCurrentKn < got[0].MaxNeapCurrentKn {
		t.Errorf("invariant not repaired: %+v", got[0])
	}
}

func TestLoadProfiles_NoTable(t *testing.T) {
	// A database without the venue table is fine: no extras, no error.
	p := filepath.Join(t.TempDir(), "fresh.db")
	got, err := LoadProfiles(p)
	if err != nil {
		t.Fatalf("LoadProfiles() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d profiles from an empty database", len(got))
	}
}
