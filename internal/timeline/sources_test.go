package timeline

import (
	"testing"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
)

func TestResolveWindSource(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payload models.WindPayload
		want    models.SourceKind
	}{
		{
			name: "live series with two distinct samples",
			payload: models.WindPayload{Series: []models.WindSample{
				{Time: base, SpeedKn: 10},
				{Time: base.Add(time.Hour), SpeedKn: 12},
			}},
			want: models.SourceLiveForecast,
		},
		{
			name: "single sample falls through to range",
			payload: models.WindPayload{
				Series: []models.WindSample{{Time: base, SpeedKn: 10}},
				Range:  &models.WindRange{MinKn: 9, MaxKn: 26},
			},
			want: models.SourceSynthesizedRange,
		},
		{
			name: "duplicate timestamps do not count as a series",
			payload: models.WindPayload{Series: []models.WindSample{
				{Time: base, SpeedKn: 10},
				{Time: base, SpeedKn: 11},
			}},
			want: models.SourceStaticFallback,
		},
		{
			name:    "wide saved range",
			payload: models.WindPayload{Range: &models.WindRange{MinKn: 9, MaxKn: 26}},
			want:    models.SourceSynthesizedRange,
		},
		{
			name:    "flat range is uninformative",
			payload: models.WindPayload{Range: &models.WindRange{MinKn: 11, MaxKn: 13}},
			want:    models.SourceStaticFallback,
		},
		{
			name:    "nothing at all",
			payload: models.WindPayload{},
			want:    models.SourceStaticFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveWindSource(tt.payload); got != tt.want {
				t.Errorf("ResolveWindSource() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveTideSource(t *testing.T) {
	high := models.NewTideExtreme(models.TideHigh, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), 2.1)

	tests := []struct {
		name    string
		payload models.TidePayload
		want    models.SourceKind
	}{
		{
			name:    "intel with an extreme",
			payload: models.TidePayload{Intel: &models.TideIntel{NextHigh: &high}},
			want:    models.SourceLiveForecast,
		},
		{
			name:    "intel without extremes is not live",
			payload: models.TidePayload{Intel: &models.TideIntel{SpeedHintKn: 1.2, HasSpeedHint: true}},
			want:    models.SourceStaticFallback,
		},
		{
			name:    "saved snapshot",
			payload: models.TidePayload{Snapshot: &models.TideSnapshot{State: models.TideStateFlooding, HeightM: 1.5}},
			want:    models.SourceSavedSnapshot,
		},
		{
			name:    "empty intel beats nothing but snapshot wins over it",
			payload: models.TidePayload{Intel: &models.TideIntel{}, Snapshot: &models.TideSnapshot{State: models.TideStateSlack}},
			want:    models.SourceSavedSnapshot,
		},
		{
			name:    "nothing at all",
			payload: models.TidePayload{},
			want:    models.SourceStaticFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTideSource(tt.payload); got != tt.want {
				t.Errorf("ResolveTideSource() = %v, want %v", got, tt.want)
			}
		})
	}
}
