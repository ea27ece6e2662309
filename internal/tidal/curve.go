// Package tidal estimates tide height, tidal current, and slack water
// from tide extremes. The models here are deliberately approximate:
// they produce bounded, smooth values for tactical race display, not
// navigational-grade predictions.
package tidal

import (
	"math"
	"sort"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
)

// MeanHalfPeriodMinutes is the mean interval between consecutive tide
// extremes (half a semidiurnal cycle). Used to extrapolate a mirror
// extreme when the target time falls outside the known extremes.
const MeanHalfPeriodMinutes = 372.5

// InterpolateHeight returns the tide height and the phase fraction in
// [0,1] at time t between two bracketing extremes, using a half-cosine
// blend. The blend has zero slope at each extreme, so adjacent extreme
// pairs join with continuous height and slope, matching the shape of a
// real tide curve far better than a straight line.
//
// ok is false when either extreme height is non-finite; callers fall
// back to a flat estimate in that case.
func InterpolateHeight(t time.Time, before, after models.TideExtreme) (heightM, phase float64, ok bool) {
	if !isFinite(before.Height) || !isFinite(after.Height) {
		return 0, 0, false
	}
	if after.Time.Before(before.Time) {
		before, after = after, before
	}

	span := after.Time.Sub(before.Time)
	if span <= 0 {
		return before.Height, 0, true
	}

	phase = float64(t.Sub(before.Time)) / float64(span)
	if phase < 0 {
		phase = 0
	}
	if phase > 1 {
		phase = 1
	}

	// height = from + (to-from) * (1 - cos(p*pi)) / 2
	blend := (1 - math.Cos(phase*math.Pi)) / 2
	heightM = before.Height + (after.Height-before.Height)*blend
	return heightM, phase, true
}

// Bracket picks the extremes immediately before and after t from the
// given list. When t precedes the first extreme or follows the last,
// the missing side is extrapolated as a mirror extreme one mean
// half-period away with the opposite kind, so interpolation stays
// defined across the whole race window.
//
// ok is false only when the list is empty.
func Bracket(t time.Time, extremes []models.TideExtreme) (before, after models.TideExtreme, ok bool) {
	if len(extremes) == 0 {
		return models.TideExtreme{}, models.TideExtreme{}, false
	}

	sorted := make([]models.TideExtreme, len(extremes))
	copy(sorted, extremes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	first := sorted[0]
	last := sorted[len(sorted)-1]

	if !t.After(first.Time) {
		return mirrorExtreme(first, -1), first, true
	}
	if !t.Before(last.Time) {
		return last, mirrorExtreme(last, +1), true
	}

	for i := 1; i < len(sorted); i++ {
		if !t.After(sorted[i].Time) {
			return sorted[i-1], sorted[i], true
		}
	}
	// Unreachable: t is between first and last.
	return last, mirrorExtreme(last, +1), true
}

// mirrorExtreme fabricates the opposite extreme one mean half-period
// before (dir -1) or after (dir +1) a known one. The fabricated height
// is a plausible opposite: zero for a mirrored low would understate
// range at venues with high datums, so it mirrors around half the known
// height instead.
func mirrorExtreme(known models.TideExtreme, dir int) models.TideExtreme {
	kind := models.TideLow
	if known.Kind == models.TideLow {
		kind = models.TideHigh
	}
	offset := time.Duration(float64(dir) * MeanHalfPeriodMinutes * float64(time.Minute))

	height := known.Height / 2
	if kind == models.TideHigh {
		height = known.Height * 1.5
	}
	return models.NewTideExtreme(kind, known.Time.Add(offset), height)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
