package tidal

import (
	"math"
	"time"
)

// synodicMonthDays is the mean length of the lunar synodic cycle
const synodicMonthDays = 29.530588853

// referenceNewMoon is a known new moon used as the epoch for the
// synodic cycle approximation (2000-01-06 18:14 UTC).
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// SpringNeapFactor returns a scalar in [0,1] indicating position in the
// spring/neap cycle at time t: 1 at syzygy (new or full moon, spring
// tides), 0 at quadrature (quarter moons, neap tides).
//
// This is a pure synodic-cycle approximation from a fixed epoch, not an
// ephemeris lookup. True spring/neap timing can differ by one to two
// days, which is acceptable for tactical display and nothing more.
func SpringNeapFactor(t time.Time) float64 {
	days := t.Sub(referenceNewMoon).Hours() / 24
	cycles := days / synodicMonthDays
	frac := cycles - math.Floor(cycles)

	// |cos| maps both new moon (frac 0) and full moon (frac 0.5) to 1,
	// quarters (frac 0.25, 0.75) to 0.
	return math.Abs(math.Cos(2 * math.Pi * frac))
}
