package timeline

import (
	"math"
	"sort"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
)

// WindWaveCouplingCoefficient couples estimated wave height to wind
// speed in the no-data heuristic. Provisional stand-in for a real
// marine sea-state forecast, tuned for sheltered racing water.
const WindWaveCouplingCoefficient = 0.3

// BaseWaveHeightM is the floor of the wave-height heuristic
const BaseWaveHeightM = 0.5

// StaticFallbackWindKn is the single repeated wind value used when no
// live series and no usable saved range exist. Always tagged
// StaticFallback so the UI can disclose "no live data".
const StaticFallbackWindKn = 10.0

// estimateWaveHeight is the documented heuristic coupling of sea state
// to wind used when no live wave data is available. It is an estimate
// for display, not a forecast.
func estimateWaveHeight(windSpeedKn float64) float64 {
	if windSpeedKn < 0 || !finite(windSpeedKn) {
		windSpeedKn = 0
	}
	return BaseWaveHeightM + windSpeedKn/20*WindWaveCouplingCoefficient
}

// interpolateWind linearly interpolates a wind sample at time t from a
// live series. Outside the series span the nearest end sample is used
// unchanged. The series must be non-empty.
func interpolateWind(t time.Time, series []models.WindSample) models.WindSample {
	sorted := make([]models.WindSample, len(series))
	copy(sorted, series)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	if !t.After(sorted[0].Time) {
		s := sorted[0]
		s.Time = t
		return s
	}
	last := sorted[len(sorted)-1]
	if !t.Before(last.Time) {
		s := last
		s.Time = t
		return s
	}

	for i := 1; i < len(sorted); i++ {
		if !t.After(sorted[i].Time) {
			return lerpSamples(t, sorted[i-1], sorted[i])
		}
	}
	s := last
	s.Time = t
	return s
}

// lerpSamples interpolates between two bracketing samples. Direction
// blends along the shortest arc so a 350-to-10 degree shift does not
// swing the vane through south.
func lerpSamples(t time.Time, a, b models.WindSample) models.WindSample {
	span := b.Time.Sub(a.Time)
	frac := 0.0
	if span > 0 {
		frac = float64(t.Sub(a.Time)) / float64(span)
	}

	out := models.WindSample{
		Time:         t,
		SpeedKn:      a.SpeedKn + (b.SpeedKn-a.SpeedKn)*frac,
		DirectionDeg: lerpDirection(a.DirectionDeg, b.DirectionDeg, frac),
	}
	if a.HasGusts && b.HasGusts {
		out.GustsKn = a.GustsKn + (b.GustsKn-a.GustsKn)*frac
		out.HasGusts = true
	}
	if a.HasWaves && b.HasWaves {
		out.WaveHeightM = a.WaveHeightM + (b.WaveHeightM-a.WaveHeightM)*frac
		out.WavePeriodS = a.WavePeriodS + (b.WavePeriodS-a.WavePeriodS)*frac
		out.HasWaves = true
	}
	return out
}

// lerpDirection interpolates compass degrees along the shortest arc
func lerpDirection(a, b, frac float64) float64 {
	diff := math.Mod(b-a+540, 360) - 180
	dir := math.Mod(a+diff*frac+360, 360)
	return dir
}

// synthesizeRangeSeries builds a smooth single-hump wind curve over the
// given instants from a saved min/max range: low at the window edges,
// peaking mid-window. The raw sin hump is rescaled affinely so the
// emitted series hits the documented min and max exactly, keeping the
// headline numbers and the sparkline in visual agreement.
func synthesizeRangeSeries(times []time.Time, r models.WindRange) []models.WindSample {
	n := len(times)
	out := make([]models.WindSample, n)
	if n == 0 {
		return out
	}

	dir := CardinalToDegrees(r.Direction)

	if n == 1 {
		out[0] = models.WindSample{Time: times[0], SpeedKn: (r.MinKn + r.MaxKn) / 2, DirectionDeg: dir}
		return out
	}

	span := times[n-1].Sub(times[0])
	raw := make([]float64, n)
	rawMin, rawMax := math.Inf(1), math.Inf(-1)
	for i, t := range times {
		progress := 0.0
		if span > 0 {
			progress = float64(t.Sub(times[0])) / float64(span)
		}
		raw[i] = math.Sin(progress * math.Pi)
		if raw[i] < rawMin {
			rawMin = raw[i]
		}
		if raw[i] > rawMax {
			rawMax = raw[i]
		}
	}

	for i, t := range times {
		speed := (r.MinKn + r.MaxKn) / 2
		if rawMax > rawMin {
			speed = r.MinKn + (raw[i]-rawMin)/(rawMax-rawMin)*(r.MaxKn-r.MinKn)
		}
		out[i] = models.WindSample{Time: t, SpeedKn: speed, DirectionDeg: dir}
	}
	return out
}

// cardinalDegrees maps compass points to meteorological degrees
var cardinalDegrees = map[string]float64{
	"N": 0, "NNE": 22.5, "NE": 45, "ENE": 67.5,
	"E": 90, "ESE": 112.5, "SE": 135, "SSE": 157.5,
	"S": 180, "SSW": 202.5, "SW": 225, "WSW": 247.5,
	"W": 270, "WNW": 292.5, "NW": 315, "NNW": 337.5,
}

// CardinalToDegrees converts a compass point ("WSW") to degrees.
// Unknown or empty strings return 0.
func CardinalToDegrees(cardinal string) float64 {
	return cardinalDegrees[cardinal]
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
