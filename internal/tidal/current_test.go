package tidal

import (
	"math"
	"testing"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
	"github.com/ngmaloney/regatta-terminal/internal/venues"
)

func testExtremes() (high, low models.TideExtreme) {
	high = models.TideExtreme{Kind: models.TideHigh, Time: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), Height: 2.1}
	low = models.TideExtreme{Kind: models.TideLow, Time: time.Date(2024, 5, 1, 15, 43, 0, 0, time.UTC), Height: 0.4}
	return high, low
}

func TestEstimator_Estimate_Phase(t *testing.T) {
	high, low := testExtremes()
	e := NewEstimator()

	tests := []struct {
		name string
		at   time.Time
		want models.TidePhase
	}{
		{
			name: "well before high is flood",
			at:   high.Time.Add(-90 * time.Minute),
			want: models.PhaseFlood,
		},
		{
			name: "within slack window of high",
			at:   high.Time.Add(10 * time.Minute),
			want: models.PhaseSlackHigh,
		},
		{
			name: "after high outside slack is ebb",
			at:   high.Time.Add(25 * time.Minute),
			want: models.PhaseEbb,
		},
		{
			name: "within slack window of low",
			at:   low.Time.Add(-14 * time.Minute),
			want: models.PhaseSlackLow,
		},
		{
			name: "after low is flood",
			at:   low.Time.Add(45 * time.Minute),
			want: models.PhaseFlood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := e.Estimate(tt.at, &high, &low, nil, 0, false)
			if est.Phase != tt.want {
				t.Errorf("phase = %v, want %v", est.Phase, tt.want)
			}
		})
	}
}

func TestEstimator_Estimate_PhaseMonotoneAcrossHigh(t *testing.T) {
	high, low := testExtremes()
	e := NewEstimator()

	// Walking forward across the high, the phase must go
	// flood -> slack-high -> ebb in order, never skipping or reversing.
	order := map[models.TidePhase]int{
		models.PhaseFlood:     0,
		models.PhaseSlackHigh: 1,
		models.PhaseEbb:       2,
	}

	last := -1
	for m := -60; m <= 60; m++ {
		at := high.Time.Add(time.Duration(m) * time.Minute)
		est := e.Estimate(at, &high, &low, nil, 0, false)
		rank, ok := order[est.Phase]
		if !ok {
			t.Fatalf("unexpected phase %v at offset %dm", est.Phase, m)
		}
		if rank < last {
			t.Fatalf("phase reversed at offset %dm: %v", m, est.Phase)
		}
		last = rank
	}
	if last != 2 {
		t.Errorf("walk ended in phase rank %d, want ebb", last)
	}
}

func TestEstimator_Estimate_Magnitude(t *testing.T) {
	high, low := testExtremes()
	e := NewEstimator()
	solent := venues.AreaProfile{Name: "The Solent", Lat: 50.764, Lng: -1.3, MaxNeapCurrentKn: 1.5, MaxSpringCurrentKn: 3.5}

	t.Run("vanishes at the extreme", func(t *testing.T) {
		est := e.Estimate(high.Time, &high, &low, &solent, 0, false)
		if est.SpeedKn > 0.01 {
			t.Errorf("speed at extreme = %v, want ~0", est.SpeedKn)
		}
	})

	t.Run("peaks mid-flow", func(t *testing.T) {
		atExtreme := e.Estimate(high.Time.Add(5*time.Minute), &high, &low, &solent, 0, false)
		midFlow := e.Estimate(high.Time.Add(3*time.Hour), &high, &low, &solent, 0, false)
		if midFlow.SpeedKn <= atExtreme.SpeedKn {
			t.Errorf("mid-flow speed %v not greater than near-extreme speed %v", midFlow.SpeedKn, atExtreme.SpeedKn)
		}
	})

	t.Run("bounded by spring maximum", func(t *testing.T) {
		for m := 0; m <= 373; m += 10 {
			est := e.Estimate(high.Time.Add(time.Duration(m)*time.Minute), &high, &low, &solent, 0, false)
			if est.SpeedKn > solent.MaxSpringCurrentKn+1e-9 {
				t.Fatalf("speed %v exceeds spring max %v", est.SpeedKn, solent.MaxSpringCurrentKn)
			}
		}
	})

	t.Run("live hint used without profile", func(t *testing.T) {
		est := e.Estimate(high.Time.Add(3*time.Hour), &high, &low, nil, 2.4, true)
		if est.IsPlaceholder {
			t.Error("IsPlaceholder = true with a live hint")
		}
		if est.SpeedKn <= 0 || est.SpeedKn > 2.4 {
			t.Errorf("speed = %v, want in (0, 2.4]", est.SpeedKn)
		}
	})
}

func TestEstimator_Estimate_Fallbacks(t *testing.T) {
	e := NewEstimator()

	t.Run("no inputs at all", func(t *testing.T) {
		est := e.Estimate(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), nil, nil, nil, 0, false)
		if !est.IsPlaceholder {
			t.Error("IsPlaceholder = false, want true for all-nil inputs")
		}
		if est.SpeedKn != PlaceholderSpeedKn {
			t.Errorf("speed = %v, want placeholder %v", est.SpeedKn, PlaceholderSpeedKn)
		}
		if est.Phase != models.PhaseFlood {
			t.Errorf("phase = %v, want flood placeholder", est.Phase)
		}
	})

	t.Run("negative hint ignored", func(t *testing.T) {
		est := e.Estimate(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), nil, nil, nil, -3, true)
		if !est.IsPlaceholder {
			t.Error("negative hint should fall through to placeholder")
		}
	})

	t.Run("non-finite hint ignored", func(t *testing.T) {
		est := e.Estimate(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), nil, nil, nil, math.NaN(), true)
		if !est.IsPlaceholder {
			t.Error("NaN hint should fall through to placeholder")
		}
	})

	t.Run("speed never negative or non-finite", func(t *testing.T) {
		high, low := testExtremes()
		for m := -600; m <= 1200; m += 30 {
			est := e.Estimate(high.Time.Add(time.Duration(m)*time.Minute), &high, &low, nil, 0, false)
			if est.SpeedKn < 0 || math.IsNaN(est.SpeedKn) || math.IsInf(est.SpeedKn, 0) {
				t.Fatalf("speed = %v at offset %dm", est.SpeedKn, m)
			}
		}
	})

	t.Run("only one extreme known", func(t *testing.T) {
		high, _ := testExtremes()
		est := e.Estimate(high.Time.Add(-time.Hour), &high, nil, nil, 0, false)
		if est.Phase != models.PhaseFlood {
			t.Errorf("phase = %v, want flood approaching a lone high", est.Phase)
		}
	})
}
