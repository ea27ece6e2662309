package timeline

import "github.com/ngmaloney/regatta-terminal/internal/models"

// RangeSpreadThresholdKn is the minimum min/max spread for a saved wind
// range to be worth synthesizing a curve from. A flatter range carries
// no more information than a single static value.
const RangeSpreadThresholdKn = 3.0

// ResolveWindSource picks the authoritative wind source for a synthesis
// call. Precedence: a live series with at least two time-distinct
// samples, then a saved range wide enough to synthesize from, then the
// static fallback.
func ResolveWindSource(p models.WindPayload) models.SourceKind {
	if timeDistinctSamples(p.Series) >= 2 {
		return models.SourceLiveForecast
	}
	if p.Range != nil && p.Range.Spread() >= RangeSpreadThresholdKn {
		return models.SourceSynthesizedRange
	}
	return models.SourceStaticFallback
}

// ResolveTideSource picks the authoritative tide source: live intel
// with at least one extreme, then a saved coarse snapshot, then the
// static fallback.
func ResolveTideSource(p models.TidePayload) models.SourceKind {
	if p.Intel != nil && (p.Intel.NextHigh != nil || p.Intel.NextLow != nil) {
		return models.SourceLiveForecast
	}
	if p.Snapshot != nil {
		return models.SourceSavedSnapshot
	}
	return models.SourceStaticFallback
}

// timeDistinctSamples counts samples with distinct timestamps. Two
// samples at the same instant cannot anchor an interpolation.
func timeDistinctSamples(series []models.WindSample) int {
	seen := make(map[int64]struct{}, len(series))
	for _, s := range series {
		seen[s.Time.UnixNano()] = struct{}{}
	}
	return len(seen)
}
