package models

import "time"

// MilestoneKind identifies a race milestone on the timeline
type MilestoneKind string

const (
	MilestoneWarning MilestoneKind = "warning"
	MilestoneStart   MilestoneKind = "start"
	MilestoneFinish  MilestoneKind = "finish"
)

// TimelinePoint is one sampled instant in the synthesized race
// conditions series. Points are ordered ascending by time and the
// sequence is built once per synthesis call, never mutated after.
type TimelinePoint struct {
	Time        time.Time
	Label       string
	IsMilestone bool
	Milestone   MilestoneKind // set only when IsMilestone

	Wind    WindSample
	Current CurrentEstimate

	TideHeightM   float64
	HasTideHeight bool
	WaveHeightM   float64
	WavePeriodS   float64
	HasWavePeriod bool
	HasWaveHeight bool
}

// SourceKind enumerates which upstream source a timeline category was
// built from, carried alongside the timeline for UI disclosure.
type SourceKind string

const (
	SourceLiveForecast     SourceKind = "live-forecast"
	SourceSavedSnapshot    SourceKind = "saved-snapshot"
	SourceSynthesizedRange SourceKind = "synthesized-range"
	SourceStaticFallback   SourceKind = "static-fallback"
)

// String returns a display label for the source
func (s SourceKind) String() string {
	switch s {
	case SourceLiveForecast:
		return "Live forecast"
	case SourceSavedSnapshot:
		return "Saved snapshot"
	case SourceSynthesizedRange:
		return "Synthesized from range"
	case SourceStaticFallback:
		return "No data (static fallback)"
	}
	return string(s)
}

// SourceDecision records, per category, which source was authoritative
// for a synthesis call. It is disclosure metadata only; the estimators
// never read it.
type SourceDecision struct {
	Wind SourceKind
	Tide SourceKind
}
