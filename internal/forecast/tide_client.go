package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
)

// NOAATideClient implements TideClient using the NOAA CO-OPS API
type NOAATideClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTideClient creates a new NOAA tide client
func NewTideClient() *NOAATideClient {
	return &NOAATideClient{
		baseURL: "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetTideIntel retrieves the next high and low tide after the given
// instant, plus a best-effort current-speed hint from the station's
// currents predictions. A missing currents product is not an error;
// the hint is simply absent.
func (c *NOAATideClient) GetTideIntel(ctx context.Context, stationID string, after time.Time) (*models.TideIntel, error) {
	extremes, err := c.getExtremes(ctx, stationID, after)
	if err != nil {
		return nil, err
	}

	intel := &models.TideIntel{}
	for i := range extremes {
		ex := extremes[i]
		if !ex.Time.After(after) {
			continue
		}
		if ex.Kind == models.TideHigh && intel.NextHigh == nil {
			intel.NextHigh = &extremes[i]
		}
		if ex.Kind == models.TideLow && intel.NextLow == nil {
			intel.NextLow = &extremes[i]
		}
	}

	if hint, ok := c.getSpeedHint(ctx, stationID, after); ok {
		intel.SpeedHintKn = hint
		intel.HasSpeedHint = true
	}

	return intel, nil
}

// getExtremes fetches high/low predictions for the day around `after`
func (c *NOAATideClient) getExtremes(ctx context.Context, stationID string, after time.Time) ([]models.TideExtreme, error) {
	params := url.Values{}
	params.Add("begin_date", after.AddDate(0, 0, -1).Format("20060102"))
	params.Add("end_date", after.AddDate(0, 0, 2).Format("20060102"))
	params.Add("station", stationID)
	params.Add("product", "predictions")
	params.Add("datum", "MLLW")
	params.Add("time_zone", "gmt")
	params.Add("interval", "hilo") // High and low tides only
	params.Add("units", "metric")  // Meters
	params.Add("format", "json")
	params.Add("application", "RegattaTerminal")

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tide predictions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var tideResp tideResponse
	if err := json.NewDecoder(resp.Body).Decode(&tideResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	extremes := make([]models.TideExtreme, 0, len(tideResp.Predictions))
	for _, pred := range tideResp.Predictions {
		eventTime, err := time.Parse("2006-01-02 15:04", pred.Time)
		if err != nil {
			continue // Skip invalid times
		}

		height, err := strconv.ParseFloat(pred.Height, 64)
		if err != nil {
			continue // Skip events with invalid height
		}

		kind := models.TideLow
		if pred.Type == "H" {
			kind = models.TideHigh
		}

		extremes = append(extremes, models.NewTideExtreme(kind, eventTime.UTC(), height))
	}

	return extremes, nil
}

// getSpeedHint fetches the predicted peak current speed nearest to
// `after` from the station's currents predictions. Best effort only.
func (c *NOAATideClient) getSpeedHint(ctx context.Context, stationID string, after time.Time) (float64, bool) {
	params := url.Values{}
	params.Add("begin_date", after.Format("20060102"))
	params.Add("end_date", after.AddDate(0, 0, 1).Format("20060102"))
	params.Add("station", stationID)
	params.Add("product", "currents_predictions")
	params.Add("time_zone", "gmt")
	params.Add("interval", "MAX_SLACK")
	params.Add("units", "english") // Knots
	params.Add("format", "json")
	params.Add("application", "RegattaTerminal")

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return 0, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false
	}

	var currentsResp currentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&currentsResp); err != nil {
		return 0, false
	}

	// The strongest predicted flow of the day is the most useful single
	// hint for a venue without a profile.
	best := 0.0
	for _, pred := range currentsResp.CurrentPredictions.Predictions {
		speed := math.Abs(pred.VelocityMajor)
		if speed > best {
			best = speed
		}
	}
	if best <= 0 {
		return 0, false
	}
	return best, true
}

// Internal types for NOAA CO-OPS API responses

type tideResponse struct {
	Metadata struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Lat  string `json:"lat"`
		Lon  string `json:"lon"`
	} `json:"metadata"`
	Predictions []struct {
		Time   string `json:"t"`
		Height string `json:"v"`    // NOAA returns this as string
		Type   string `json:"type"` // "H" or "L"
	} `json:"predictions"`
}

type currentsResponse struct {
	CurrentPredictions struct {
		Predictions []struct {
			Time          string  `json:"Time"`
			VelocityMajor float64 `json:"Velocity_Major"`
			Type          string  `json:"Type"` // "flood", "ebb", "slack"
		} `json:"cp"`
	} `json:"current_predictions"`
}
