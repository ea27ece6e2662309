package models

import (
	"math"
	"testing"
	"time"
)

func TestNewTideExtreme_ClampsHeight(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		height float64
		want   float64
	}{
		{name: "normal height kept", height: 2.1, want: 2.1},
		{name: "negative clamped to zero", height: -0.3, want: 0},
		{name: "NaN clamped to zero", height: math.NaN(), want: 0},
		{name: "Inf clamped to zero", height: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := NewTideExtreme(TideHigh, at, tt.height)
			if ex.Height != tt.want {
				t.Errorf("Height = %v, want %v", ex.Height, tt.want)
			}
		})
	}
}

func TestWindRange_Spread(t *testing.T) {
	r := WindRange{MinKn: 9, MaxKn: 26}
	if got := r.Spread(); got != 17 {
		t.Errorf("Spread() = %v, want 17", got)
	}
}

func TestPayload_HasAny(t *testing.T) {
	if (WindPayload{}).HasAny() {
		t.Error("empty wind payload reports data")
	}
	if !(WindPayload{Range: &WindRange{MinKn: 5, MaxKn: 15}}).HasAny() {
		t.Error("range payload reports no data")
	}
	if (TidePayload{}).HasAny() {
		t.Error("empty tide payload reports data")
	}
	if !(TidePayload{Snapshot: &TideSnapshot{State: TideStateSlack}}).HasAny() {
		t.Error("snapshot payload reports no data")
	}
}

func TestTidePhase_String(t *testing.T) {
	if PhaseSlackHigh.String() != "Slack (high)" {
		t.Errorf("PhaseSlackHigh.String() = %q", PhaseSlackHigh.String())
	}
	if PhaseFlood.String() != "Flood" {
		t.Errorf("PhaseFlood.String() = %q", PhaseFlood.String())
	}
}
