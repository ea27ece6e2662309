package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/regatta-terminal/internal/forecast"
	"github.com/ngmaloney/regatta-terminal/internal/models"
)

// errMsg is sent when an unrecoverable error occurs
type errMsg struct {
	err error
}

// windFetchedMsg is sent when the live wind forecast fetch completes
type windFetchedMsg struct {
	series []models.WindSample
	err    error
}

// tideFetchedMsg is sent when the live tide intel fetch completes
type tideFetchedMsg struct {
	intel *models.TideIntel
	err   error
}

// fetchWind fetches the hourly wind forecast for the venue coordinates
func fetchWind(client forecast.WindClient, lat, lng float64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		series, err := client.GetWindSeries(ctx, lat, lng)
		return windFetchedMsg{series: series, err: err}
	}
}

// fetchTide fetches tide extremes and the current-speed hint for a
// station. An empty station ID resolves immediately with no intel so
// the saved-snapshot fallback can take over.
func fetchTide(client forecast.TideClient, stationID string, after time.Time) tea.Cmd {
	return func() tea.Msg {
		if stationID == "" {
			return tideFetchedMsg{}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		intel, err := client.GetTideIntel(ctx, stationID, after)
		return tideFetchedMsg{intel: intel, err: err}
	}
}
