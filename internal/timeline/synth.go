// Package timeline synthesizes the merged race-conditions series: one
// ordered sequence of wind/current/wave/tide points anchored at the
// race milestones, built from whatever live, saved, or fallback data
// the caller could supply. Synthesis is a pure function of its input:
// identical inputs always produce an identical point sequence.
package timeline

import (
	"sort"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
	"github.com/ngmaloney/regatta-terminal/internal/tidal"
	"github.com/ngmaloney/regatta-terminal/internal/venues"
)

const (
	// StartOffsetMinutes separates the start gun from the warning signal
	StartOffsetMinutes = 5

	// WindowLeadMinutes extends the timeline window before the warning
	// signal so pre-start conditions are visible.
	WindowLeadMinutes = 30

	// AnchorDedupeMinutes suppresses a tide-extreme point this close to
	// an existing anchor, avoiding near-duplicate rows.
	AnchorDedupeMinutes = 10

	// DefaultDurationMinutes is the assumed race length when the caller
	// gives none.
	DefaultDurationMinutes = 90
)

// Input is everything a synthesis call consumes. No ambient clock is
// read anywhere downstream; RaceTime is the only notion of time.
type Input struct {
	RaceTime             time.Time
	WarningOffsetMinutes int // 0 means no separate warning signal
	DurationMinutes      int // 0 means DefaultDurationMinutes

	VenueLat float64
	VenueLng float64
	HasVenue bool

	// ExtraProfiles extends the built-in venue catalog, e.g. with
	// profiles loaded from the shared database.
	ExtraProfiles []venues.AreaProfile

	Wind models.WindPayload
	Tide models.TidePayload
}

// Summary carries the headline ranges shown above the timeline
type Summary struct {
	WindMinKn    float64
	WindMaxKn    float64
	CurrentMaxKn float64
	WaveMaxM     float64
}

// Result is the finished timeline plus disclosure metadata
type Result struct {
	Points  []models.TimelinePoint
	Sources models.SourceDecision
	Summary Summary
}

// Synthesize builds the race-conditions timeline. An unusable (zero)
// race time yields an empty point sequence, which callers must treat as
// "insufficient input", never as calm conditions.
func Synthesize(in Input) Result {
	if in.RaceTime.IsZero() {
		return Result{
			Sources: models.SourceDecision{
				Wind: models.SourceStaticFallback,
				Tide: models.SourceStaticFallback,
			},
		}
	}

	warning := in.RaceTime
	if in.WarningOffsetMinutes > 0 {
		warning = in.RaceTime.Add(-time.Duration(in.WarningOffsetMinutes) * time.Minute)
	}
	duration := in.DurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}

	start := warning.Add(StartOffsetMinutes * time.Minute)
	mid := start.Add(time.Duration(duration) * time.Minute / 2)
	finish := start.Add(time.Duration(duration) * time.Minute)
	windowStart := warning.Add(-WindowLeadMinutes * time.Minute)

	specs := []pointSpec{
		{time: warning, label: "Warning signal", milestone: models.MilestoneWarning, isMilestone: true},
		{time: start, label: "Start", milestone: models.MilestoneStart, isMilestone: true},
		{time: mid, label: "Mid-race"},
		{time: finish, label: "Finish", milestone: models.MilestoneFinish, isMilestone: true},
	}

	high, low, speedHint, hasHint := tideInputs(in.Tide)
	specs = append(specs, extremeSpecs(specs, high, low, windowStart, finish)...)

	sort.SliceStable(specs, func(i, j int) bool { return specs[i].time.Before(specs[j].time) })

	decision := models.SourceDecision{
		Wind: ResolveWindSource(in.Wind),
		Tide: ResolveTideSource(in.Tide),
	}

	winds := windSeries(specs, in.Wind, decision.Wind)

	profile := resolveProfile(in)
	estimator := tidal.NewEstimator()

	points := make([]models.TimelinePoint, len(specs))
	for i, spec := range specs {
		p := models.TimelinePoint{
			Time:        spec.time,
			Label:       spec.label,
			IsMilestone: spec.isMilestone,
			Milestone:   spec.milestone,
			Wind:        winds[i],
		}

		p.Current = estimator.Estimate(spec.time, high, low, profile, speedHint, hasHint)
		if decision.Tide == models.SourceSavedSnapshot {
			p.Current.Phase = snapshotPhase(in.Tide.Snapshot.State)
		}

		p.TideHeightM, p.HasTideHeight = tideHeightAt(spec.time, in.Tide, high, low)

		if winds[i].HasWaves {
			p.WaveHeightM = winds[i].WaveHeightM
			p.HasWaveHeight = true
			p.WavePeriodS = winds[i].WavePeriodS
			p.HasWavePeriod = true
		} else {
			p.WaveHeightM = estimateWaveHeight(winds[i].SpeedKn)
			p.HasWaveHeight = true
		}

		points[i] = p
	}

	return Result{
		Points:  points,
		Sources: decision,
		Summary: summarize(points),
	}
}

type pointSpec struct {
	time        time.Time
	label       string
	milestone   models.MilestoneKind
	isMilestone bool
}

// extremeSpecs returns specs for tide extremes falling strictly inside
// the window and not within AnchorDedupeMinutes of an existing anchor.
func extremeSpecs(anchors []pointSpec, high, low *models.TideExtreme, windowStart, windowEnd time.Time) []pointSpec {
	var specs []pointSpec
	for _, ex := range []*models.TideExtreme{high, low} {
		if ex == nil {
			continue
		}
		if !ex.Time.After(windowStart) || !ex.Time.Before(windowEnd) {
			continue
		}
		tooClose := false
		for _, a := range anchors {
			delta := ex.Time.Sub(a.time)
			if delta < 0 {
				delta = -delta
			}
			if delta < AnchorDedupeMinutes*time.Minute {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		label := "Low tide"
		if ex.Kind == models.TideHigh {
			label = "High tide"
		}
		specs = append(specs, pointSpec{time: ex.Time, label: label})
	}
	return specs
}

// windSeries produces one wind sample per spec according to the
// resolved source.
func windSeries(specs []pointSpec, payload models.WindPayload, source models.SourceKind) []models.WindSample {
	times := make([]time.Time, len(specs))
	for i, s := range specs {
		times[i] = s.time
	}

	switch source {
	case models.SourceLiveForecast:
		out := make([]models.WindSample, len(times))
		for i, t := range times {
			out[i] = interpolateWind(t, payload.Series)
		}
		return out
	case models.SourceSynthesizedRange:
		return synthesizeRangeSeries(times, *payload.Range)
	default:
		out := make([]models.WindSample, len(times))
		for i, t := range times {
			out[i] = models.WindSample{Time: t, SpeedKn: StaticFallbackWindKn}
		}
		return out
	}
}

// tideInputs unpacks the tide payload into estimator inputs
func tideInputs(p models.TidePayload) (high, low *models.TideExtreme, speedHint float64, hasHint bool) {
	if p.Intel == nil {
		return nil, nil, 0, false
	}
	return p.Intel.NextHigh, p.Intel.NextLow, p.Intel.SpeedHintKn, p.Intel.HasSpeedHint
}

// tideHeightAt interpolates the tide height at t from whatever the
// payload offers: the half-cosine curve between live extremes, the flat
// saved-snapshot height, or nothing.
func tideHeightAt(t time.Time, p models.TidePayload, high, low *models.TideExtreme) (float64, bool) {
	var extremes []models.TideExtreme
	if high != nil {
		extremes = append(extremes, *high)
	}
	if low != nil {
		extremes = append(extremes, *low)
	}
	if len(extremes) > 0 {
		before, after, ok := tidal.Bracket(t, extremes)
		if ok {
			if h, _, ok := tidal.InterpolateHeight(t, before, after); ok {
				return h, true
			}
		}
	}
	if p.Snapshot != nil {
		return p.Snapshot.HeightM, true
	}
	return 0, false
}

// snapshotPhase maps the coarse saved tide state onto a current phase.
// Coarse snapshots do not distinguish slack at high from slack at low;
// plain "slack" is reported against the high.
func snapshotPhase(state models.TideState) models.TidePhase {
	switch state {
	case models.TideStateFlooding:
		return models.PhaseFlood
	case models.TideStateEbbing:
		return models.PhaseEbb
	case models.TideStateHigh, models.TideStateSlack:
		return models.PhaseSlackHigh
	case models.TideStateLow:
		return models.PhaseSlackLow
	}
	return models.PhaseFlood
}

func summarize(points []models.TimelinePoint) Summary {
	var s Summary
	for i, p := range points {
		if i == 0 || p.Wind.SpeedKn < s.WindMinKn {
			s.WindMinKn = p.Wind.SpeedKn
		}
		if p.Wind.SpeedKn > s.WindMaxKn {
			s.WindMaxKn = p.Wind.SpeedKn
		}
		if p.Current.SpeedKn > s.CurrentMaxKn {
			s.CurrentMaxKn = p.Current.SpeedKn
		}
		if p.HasWaveHeight && p.WaveHeightM > s.WaveMaxM {
			s.WaveMaxM = p.WaveHeightM
		}
	}
	return s
}

// resolveProfile picks the venue profile for the race coordinates from
// the built-in catalog plus any caller-supplied extras.
func resolveProfile(in Input) *venues.AreaProfile {
	if !in.HasVenue {
		return nil
	}
	if len(in.ExtraProfiles) == 0 {
		return venues.Resolve(in.VenueLat, in.VenueLng)
	}
	all := append(venues.Catalog(), in.ExtraProfiles...)
	return venues.ResolveAmong(all, in.VenueLat, in.VenueLng)
}
