package venues

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 50.764, lng1: -1.3, lat2: 50.764, lng2: -1.3,
			wantKm: 0, tolerance: 0.001,
		},
		{
			name: "Cowes to Portsmouth",
			lat1: 50.760, lng1: -1.297, lat2: 50.806, lng2: -1.091,
			wantKm: 15.4, tolerance: 1.0,
		},
		{
			name: "London to Paris",
			lat1: 51.507, lng1: -0.128, lat2: 48.857, lng2: 2.352,
			wantKm: 344, tolerance: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("HaversineKm() = %v, want %v ± %v", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		wantName string
		wantNil  bool
	}{
		{
			name: "Cowes resolves to the Solent",
			lat:  50.763, lng: -1.298,
			wantName: "The Solent",
		},
		{
			name: "Berkeley Circle resolves to San Francisco Bay",
			lat:  37.87, lng: -122.35,
			wantName: "San Francisco Bay",
		},
		{
			name: "central Auckland prefers Waitemata over Hauraki Gulf",
			lat:  -36.843, lng: 174.766,
			wantName: "Waitemata Harbour",
		},
		{
			name: "mid-Atlantic matches nothing",
			lat:  35.0, lng: -40.0,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.lat, tt.lng)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Resolve() = %v, want nil", got.Name)
				}
				return
			}
			if got == nil {
				t.Fatal("Resolve() = nil, want a profile")
			}
			if got.Name != tt.wantName {
				t.Errorf("Resolve() = %s, want %s", got.Name, tt.wantName)
			}
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	a := Resolve(50.763, -1.298)
	b := Resolve(50.763, -1.298)
	if a == nil || b == nil {
		t.Fatal("Resolve() returned nil")
	}
	if *a != *b {
		t.Errorf("repeated calls disagree: %v vs %v", a, b)
	}
}

func TestResolveAmong_ExtendedCatalog(t *testing.T) {
	extra := []AreaProfile{
		{Name: "Test Sound", Lat: 0.0, Lng: 0.0, MaxNeapCurrentKn: 0.4, MaxSpringCurrentKn: 0.9},
	}
	all := append(Catalog(), extra...)

	got := ResolveAmong(all, 0.05, 0.05)
	if got == nil || got.Name != "Test Sound" {
		t.Errorf("ResolveAmong() = %v, want Test Sound", got)
	}
}

func TestCatalog_Invariants(t *testing.T) {
	for _, p := range Catalog() {
		if p.MaxNeapCurrentKn < 0 {
			t.Errorf("%s: neap max %v is negative", p.Name, p.MaxNeapCurrentKn)
		}
		if p.MaxSpringCurrentKn < p.MaxNeapCurrentKn {
			t.Errorf("%s: spring max %v below neap max %v", p.Name, p.MaxSpringCurrentKn, p.MaxNeapCurrentKn)
		}
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].Name = "mutated"
	if Catalog()[0].Name == "mutated" {
		t.Error("Catalog() exposes internal slice")
	}
}
