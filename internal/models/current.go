package models

// TidePhase represents the phase of the tidal current at an instant.
// SlackHigh/SlackLow apply only within the slack window around a tide
// extreme; between extremes the phase is Flood or Ebb.
type TidePhase string

const (
	PhaseFlood     TidePhase = "flood"
	PhaseEbb       TidePhase = "ebb"
	PhaseSlackHigh TidePhase = "slack-high"
	PhaseSlackLow  TidePhase = "slack-low"
)

// String returns a display label for the phase
func (p TidePhase) String() string {
	switch p {
	case PhaseFlood:
		return "Flood"
	case PhaseEbb:
		return "Ebb"
	case PhaseSlackHigh:
		return "Slack (high)"
	case PhaseSlackLow:
		return "Slack (low)"
	}
	return string(p)
}

// CurrentEstimate is a point estimate of tidal current. SpeedKn is
// always finite and non-negative. IsPlaceholder marks the conservative
// no-data default; callers must present a placeholder as "no data",
// never as a measurement.
type CurrentEstimate struct {
	SpeedKn       float64
	Phase         TidePhase
	IsPlaceholder bool
}

// SlackWindow reports whether an instant falls inside the slack window
// around the nearest tide extreme. Known is false when no extremes were
// available, in which case the other fields are meaningless.
type SlackWindow struct {
	Known          bool
	IsSlackNow     bool
	MinutesToSlack int      // signed; negative means slack already passed
	SlackKind      TideKind // which extreme the window surrounds
}
