package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/models"
	"github.com/ngmaloney/regatta-terminal/internal/timeline"
)

// mphToKnots converts statute miles per hour to knots
const mphToKnots = 0.868976

// NOAAWindClient implements WindClient using the NOAA Weather API
// hourly gridpoint forecast.
type NOAAWindClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewWindClient creates a new NOAA wind client
func NewWindClient() *NOAAWindClient {
	return &NOAAWindClient{
		baseURL: "https://api.weather.gov",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "RegattaTerminal/1.0 (github.com/ngmaloney/regatta-terminal)",
	}
}

// GetWindSeries retrieves hourly wind samples for a location
func (c *NOAAWindClient) GetWindSeries(ctx context.Context, lat, lng float64) ([]models.WindSample, error) {
	gridPoint, err := c.getGridPoint(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("failed to get grid point: %w", err)
	}

	forecastURL := fmt.Sprintf("%s/gridpoints/%s/%d,%d/forecast/hourly",
		c.baseURL, gridPoint.GridID, gridPoint.GridX, gridPoint.GridY)

	req, err := http.NewRequestWithContext(ctx, "GET", forecastURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hourly forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var forecastResp hourlyForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecastResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	samples := make([]models.WindSample, 0, len(forecastResp.Properties.Periods))
	for _, period := range forecastResp.Properties.Periods {
		startTime, err := time.Parse(time.RFC3339, period.StartTime)
		if err != nil {
			continue // Skip periods with invalid times
		}

		speedKn, ok := parseWindSpeed(period.WindSpeed)
		if !ok {
			continue
		}

		samples = append(samples, models.WindSample{
			Time:         startTime,
			SpeedKn:      speedKn,
			DirectionDeg: timeline.CardinalToDegrees(period.WindDirection),
		})
	}

	return samples, nil
}

// parseWindSpeed parses NOAA wind speed strings like "12 mph" or
// "10 to 15 mph" into knots. Ranged values use the midpoint.
func parseWindSpeed(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "mph"))
	if s == "" {
		return 0, false
	}

	if lo, hi, ok := strings.Cut(s, " to "); ok {
		low, err1 := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		high, err2 := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err1 != nil || err2 != nil {
			return 0, false
		}
		return (low + high) / 2 * mphToKnots, true
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v * mphToKnots, true
}

// getGridPoint gets the NOAA grid point for a lat/lng
func (c *NOAAWindClient) getGridPoint(ctx context.Context, lat, lng float64) (*gridPoint, error) {
	url := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, lat, lng)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get grid point (status %d): %s", resp.StatusCode, string(body))
	}

	var pointResp pointResponse
	if err := json.NewDecoder(resp.Body).Decode(&pointResp); err != nil {
		return nil, err
	}

	return &gridPoint{
		GridID: pointResp.Properties.GridID,
		GridX:  pointResp.Properties.GridX,
		GridY:  pointResp.Properties.GridY,
	}, nil
}

// Internal types for NOAA API responses

type gridPoint struct {
	GridID string
	GridX  int
	GridY  int
}

type pointResponse struct {
	Properties struct {
		GridID string `json:"gridId"`
		GridX  int    `json:"gridX"`
		GridY  int    `json:"gridY"`
	} `json:"properties"`
}

type hourlyForecastResponse struct {
	Properties struct {
		Periods []struct {
			StartTime     string `json:"startTime"`
			WindSpeed     string `json:"windSpeed"`
			WindDirection string `json:"windDirection"`
		} `json:"periods"`
	} `json:"properties"`
}
