package models

import "time"

// WindSample represents one wind observation or forecast instant.
// Marine forecasts bundle sea state with wind, so a sample may also
// carry wave data; HasWaves reports whether those fields are set.
type WindSample struct {
	Time         time.Time
	SpeedKn      float64
	DirectionDeg float64 // 0-360, meteorological (from)
	GustsKn      float64 // 0 if no gust data
	HasGusts     bool
	WaveHeightM  float64
	WavePeriodS  float64
	HasWaves     bool
}

// WindRange is a saved summary of expected wind over a race window,
// recorded when only headline numbers (not a time series) are known.
type WindRange struct {
	MinKn     float64
	MaxKn     float64
	Direction string // cardinal, e.g. "WSW"; empty if unknown
}

// Spread returns the width of the range in knots
func (r WindRange) Spread() float64 {
	return r.MaxKn - r.MinKn
}

// WindPayload carries whichever wind source the caller has: a live
// forecast series, a saved min/max range, or nothing. Resolved once
// at the synthesis boundary.
type WindPayload struct {
	Series []WindSample
	Range  *WindRange
}

// HasAny reports whether the payload carries any wind source
func (p WindPayload) HasAny() bool {
	return len(p.Series) > 0 || p.Range != nil
}
