// Package forecast fetches live wind and tide data from NOAA services
// and maps it to the payload shapes the timeline synthesizer consumes.
// Fetch failures are ordinary: callers fall back to saved snapshots or
// static defaults via the source priority chain.
package forecast

import (
	"context"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
)

// WindClient defines the interface for fetching a live wind forecast
type WindClient interface {
	// GetWindSeries retrieves hourly wind samples covering the hours
	// around a race window at the given coordinates.
	GetWindSeries(ctx context.Context, lat, lng float64) ([]models.WindSample, error)
}

// TideClient defines the interface for fetching live tide intelligence
type TideClient interface {
	// GetTideIntel retrieves the next high and low tide after the given
	// instant for a tide station, plus a current-speed hint when the
	// station has currents data.
	GetTideIntel(ctx context.Context, stationID string, after time.Time) (*models.TideIntel, error)
}
