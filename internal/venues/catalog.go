// Package venues resolves race coordinates to known venue current
// profiles. The built-in catalog covers a handful of named racing
// areas; additional profiles can be loaded from the shared database.
package venues

import "math"

// MatchRadiusKm is the maximum distance from a profile center at which
// the profile is still considered a match for the venue.
const MatchRadiusKm = 50.0

// AreaProfile describes the tidal current regime of a named racing
// area: the maximum current strength under neap and spring conditions.
// MaxSpringCurrentKn >= MaxNeapCurrentKn >= 0 for every profile.
type AreaProfile struct {
	Name               string
	Lat                float64
	Lng                float64
	MaxNeapCurrentKn   float64
	MaxSpringCurrentKn float64
}

// builtinCatalog lists well-known racing venues with strong, documented
// tidal regimes. The catalog is small enough that the resolver scans it
// linearly. Order matters: ties on distance go to the earlier entry.
var builtinCatalog = []AreaProfile{
	{Name: "The Solent", Lat: 50.764, Lng: -1.300, MaxNeapCurrentKn: 1.5, MaxSpringCurrentKn: 3.5},
	{Name: "San Francisco Bay", Lat: 37.820, Lng: -122.420, MaxNeapCurrentKn: 1.8, MaxSpringCurrentKn: 4.0},
	{Name: "Hauraki Gulf", Lat: -36.700, Lng: 174.900, MaxNeapCurrentKn: 0.8, MaxSpringCurrentKn: 1.8},
	{Name: "Port Phillip", Lat: -38.100, Lng: 144.900, MaxNeapCurrentKn: 0.5, MaxSpringCurrentKn: 1.2},
	{Name: "Bay of Cadiz", Lat: 36.530, Lng: -6.290, MaxNeapCurrentKn: 0.6, MaxSpringCurrentKn: 1.4},
	{Name: "Gulf of Saint-Tropez", Lat: 43.270, Lng: 6.640, MaxNeapCurrentKn: 0.2, MaxSpringCurrentKn: 0.4},
	{Name: "Chesapeake Bay", Lat: 38.980, Lng: -76.380, MaxNeapCurrentKn: 0.7, MaxSpringCurrentKn: 1.5},
	{Name: "Waitemata Harbour", Lat: -36.840, Lng: 174.780, MaxNeapCurrentKn: 1.0, MaxSpringCurrentKn: 2.2},
	{Name: "Sydney Harbour", Lat: -33.850, Lng: 151.230, MaxNeapCurrentKn: 0.6, MaxSpringCurrentKn: 1.3},
	{Name: "Kiel Bight", Lat: 54.430, Lng: 10.190, MaxNeapCurrentKn: 0.3, MaxSpringCurrentKn: 0.6},
}

// Catalog returns the built-in venue profiles in catalog order
func Catalog() []AreaProfile {
	out := make([]AreaProfile, len(builtinCatalog))
	copy(out, builtinCatalog)
	return out
}

// HaversineKm calculates the great-circle distance in kilometers
// between two lat/lng points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Resolve returns the nearest profile whose center lies within
// MatchRadiusKm of the given coordinates, or nil when no profile is
// near enough. Deterministic: ties break to the earliest catalog entry.
func Resolve(lat, lng float64) *AreaProfile {
	return ResolveAmong(builtinCatalog, lat, lng)
}

// ResolveAmong runs the same nearest-profile scan over an explicit
// profile list (built-in catalog plus any database-loaded extras).
func ResolveAmong(profiles []AreaProfile, lat, lng float64) *AreaProfile {
	var best *AreaProfile
	bestDist := MatchRadiusKm

	for i := range profiles {
		d := HaversineKm(lat, lng, profiles[i].Lat, profiles[i].Lng)
		if d < bestDist || (best == nil && d == bestDist) {
			p := profiles[i]
			best = &p
			bestDist = d
		}
	}
	return best
}
