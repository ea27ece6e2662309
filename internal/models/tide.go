package models

import (
	"math"
	"time"
)

// TideKind represents whether a tide extreme is a high or low water
type TideKind string

const (
	TideHigh TideKind = "H"
	TideLow  TideKind = "L"
)

// TideExtreme represents a single high or low tide occurrence.
// Heights are meters above chart datum and never negative.
type TideExtreme struct {
	Kind   TideKind
	Time   time.Time
	Height float64 // meters
}

// NewTideExtreme builds a TideExtreme, clamping the height so a negative
// or non-finite reading from an upstream source can never produce an
// impossible value inside the estimator.
func NewTideExtreme(kind TideKind, t time.Time, heightM float64) TideExtreme {
	if math.IsNaN(heightM) || math.IsInf(heightM, 0) || heightM < 0 {
		heightM = 0
	}
	return TideExtreme{Kind: kind, Time: t, Height: heightM}
}

// TideIntel is the rich live tide payload: the extremes bracketing the
// race window plus an optional measured current-speed hint.
type TideIntel struct {
	NextHigh     *TideExtreme
	NextLow      *TideExtreme
	SpeedHintKn  float64
	HasSpeedHint bool
}

// TideState is the coarse state recorded in a saved tide snapshot
type TideState string

const (
	TideStateFlooding TideState = "flooding"
	TideStateEbbing   TideState = "ebbing"
	TideStateSlack    TideState = "slack"
	TideStateHigh     TideState = "high"
	TideStateLow      TideState = "low"
)

// TideSnapshot is a previously saved coarse observation of tide state,
// used when no live intel is available.
type TideSnapshot struct {
	State     TideState
	HeightM   float64
	Direction string // cardinal, e.g. "SW"; empty if unknown
	SavedAt   time.Time
}

// TidePayload carries whichever tide source the caller has. At most one
// of Intel and Snapshot is set; both nil means no tide data at all. The
// union is resolved once at the synthesis boundary, never re-branched
// inside the estimators.
type TidePayload struct {
	Intel    *TideIntel
	Snapshot *TideSnapshot
}

// HasAny reports whether the payload carries any tide source
func (p TidePayload) HasAny() bool {
	return p.Intel != nil || p.Snapshot != nil
}
