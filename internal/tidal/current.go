package tidal

import (
	"math"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
	"github.com/ngmaloney/regatta-terminal/internal/venues"
)

// DefaultSlackHalfWidthMinutes bounds the slack window: the estimate is
// slack-high/slack-low within this many minutes of a tide extreme.
const DefaultSlackHalfWidthMinutes = 15.0

// PlaceholderSpeedKn is the conservative default current speed returned
// when neither a venue profile nor a live speed hint is available. It
// is a labeled placeholder, never a measurement.
const PlaceholderSpeedKn = 0.5

// Estimator produces point estimates of tidal current. The zero value
// is not usable; construct with NewEstimator.
type Estimator struct {
	slackHalfWidth time.Duration
}

// NewEstimator returns an Estimator with the default slack window
func NewEstimator() *Estimator {
	return &Estimator{
		slackHalfWidth: time.Duration(DefaultSlackHalfWidthMinutes * float64(time.Minute)),
	}
}

// NewEstimatorWithSlackWidth returns an Estimator with a custom slack
// half-width, for venues where slack lasts longer or shorter than the
// default. Non-positive widths fall back to the default.
func NewEstimatorWithSlackWidth(halfWidth time.Duration) *Estimator {
	if halfWidth <= 0 {
		return NewEstimator()
	}
	return &Estimator{slackHalfWidth: halfWidth}
}

// Estimate computes the tidal current at time t from whatever inputs
// are available. It is total: every combination of nil and missing
// inputs yields a defined, finite, non-negative estimate.
//
// Phase comes from the extremes: slack within the slack window of an
// extreme, otherwise flood when approaching a high and ebb when
// approaching a low. Magnitude scales a venue profile between its neap
// and spring maxima by the spring/neap factor, or uses a live speed
// hint, and is modulated sinusoidally so current peaks mid-flow and
// vanishes at the extremes.
func (e *Estimator) Estimate(t time.Time, high, low *models.TideExtreme, profile *venues.AreaProfile, speedHintKn float64, hasHint bool) models.CurrentEstimate {
	phase, minutesToNearest, hasExtremes := e.phaseAt(t, high, low)

	var base float64
	placeholder := false
	switch {
	case profile != nil:
		factor := SpringNeapFactor(t)
		base = profile.MaxNeapCurrentKn + (profile.MaxSpringCurrentKn-profile.MaxNeapCurrentKn)*factor
	case hasHint && speedHintKn > 0 && isFinite(speedHintKn):
		base = speedHintKn
	default:
		base = PlaceholderSpeedKn
		placeholder = true
	}

	speed := base
	if hasExtremes {
		// Max current occurs between extremes, zero at them.
		frac := math.Min(minutesToNearest/MeanHalfPeriodMinutes, 1)
		speed = base * math.Sin(math.Pi*frac)
		if speed < 0 {
			speed = 0
		}
	}

	if !isFinite(speed) || speed < 0 {
		speed = 0
	}

	return models.CurrentEstimate{
		SpeedKn:       speed,
		Phase:         phase,
		IsPlaceholder: placeholder,
	}
}

// phaseAt derives the tidal phase at t and the distance in minutes to
// the nearest extreme. When no extremes are known the phase is a flood
// placeholder and hasExtremes is false.
func (e *Estimator) phaseAt(t time.Time, high, low *models.TideExtreme) (phase models.TidePhase, minutesToNearest float64, hasExtremes bool) {
	nearest := nearestExtreme(t, high, low)
	if nearest == nil {
		return models.PhaseFlood, 0, false
	}

	delta := t.Sub(nearest.Time)
	minutesToNearest = math.Abs(delta.Minutes())

	if absDuration(delta) <= e.slackHalfWidth {
		if nearest.Kind == models.TideHigh {
			return models.PhaseSlackHigh, minutesToNearest, true
		}
		return models.PhaseSlackLow, minutesToNearest, true
	}

	// Outside the slack window: approaching a high means the water is
	// rising (flood); past a high, or approaching a low, it is falling.
	approaching := t.Before(nearest.Time)
	if nearest.Kind == models.TideHigh {
		if approaching {
			return models.PhaseFlood, minutesToNearest, true
		}
		return models.PhaseEbb, minutesToNearest, true
	}
	if approaching {
		return models.PhaseEbb, minutesToNearest, true
	}
	return models.PhaseFlood, minutesToNearest, true
}

// nearestExtreme returns whichever of high/low is closest in time to t,
// or nil when both are nil. Ties go to the high.
func nearestExtreme(t time.Time, high, low *models.TideExtreme) *models.TideExtreme {
	switch {
	case high == nil && low == nil:
		return nil
	case high == nil:
		return low
	case low == nil:
		return high
	}
	if absDuration(t.Sub(high.Time)) <= absDuration(t.Sub(low.Time)) {
		return high
	}
	return low
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
