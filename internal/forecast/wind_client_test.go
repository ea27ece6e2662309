package forecast

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewWindClient(t *testing.T) {
	client := NewWindClient()

	if client == nil {
		t.Fatal("NewWindClient() returned nil")
	}
	if client.baseURL != "https://api.weather.gov" {
		t.Errorf("baseURL = %s, want https://api.weather.gov", client.baseURL)
	}
	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}
	if client.userAgent == "" {
		t.Error("userAgent should not be empty")
	}
}

func TestNOAAWindClient_GetWindSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}
		w.Header().Set("Content-Type", "application/json")

		if strings.HasPrefix(r.URL.Path, "/points/") {
			pointResp := pointResponse{}
			pointResp.Properties.GridID = "SEW"
			pointResp.Properties.GridX = 124
			pointResp.Properties.GridY = 67
			json.NewEncoder(w).Encode(pointResp)
			return
		}

		if !strings.Contains(r.URL.Path, "/forecast/hourly") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		hourly := hourlyForecastResponse{}
		hourly.Properties.Periods = []struct {
			StartTime     string `json:"startTime"`
			WindSpeed     string `json:"windSpeed"`
			WindDirection string `json:"windDirection"`
		}{
			{StartTime: "2024-05-01T09:00:00+00:00", WindSpeed: "10 mph", WindDirection: "W"},
			{StartTime: "2024-05-01T10:00:00+00:00", WindSpeed: "10 to 14 mph", WindDirection: "WSW"},
			{StartTime: "bad-time", WindSpeed: "10 mph", WindDirection: "W"},
			{StartTime: "2024-05-01T11:00:00+00:00", WindSpeed: "", WindDirection: "W"},
		}
		json.NewEncoder(w).Encode(hourly)
	}))
	defer server.Close()

	client := NewWindClient()
	client.baseURL = server.URL

	samples, err := client.GetWindSeries(context.Background(), 47.6062, -122.3321)
	if err != nil {
		t.Fatalf("GetWindSeries() error = %v", err)
	}

	// The bad-time and empty-speed periods are skipped.
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}

	if math.Abs(samples[0].SpeedKn-10*mphToKnots) > 1e-9 {
		t.Errorf("first speed = %v, want %v", samples[0].SpeedKn, 10*mphToKnots)
	}
	if samples[0].DirectionDeg != 270 {
		t.Errorf("first direction = %v, want 270", samples[0].DirectionDeg)
	}
	if math.Abs(samples[1].SpeedKn-12*mphToKnots) > 1e-9 {
		t.Errorf("ranged speed = %v, want midpoint %v", samples[1].SpeedKn, 12*mphToKnots)
	}
	if samples[1].DirectionDeg != 247.5 {
		t.Errorf("second direction = %v, want 247.5", samples[1].DirectionDeg)
	}
}

func TestNOAAWindClient_GetWindSeries_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewWindClient()
	client.baseURL = server.URL

	if _, err := client.GetWindSeries(context.Background(), 47.6, -122.3); err == nil {
		t.Error("GetWindSeries() error = nil, want error on 500")
	}
}

func TestParseWindSpeed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantKn float64
		wantOk bool
	}{
		{name: "plain value", input: "12 mph", wantKn: 12 * mphToKnots, wantOk: true},
		{name: "range uses midpoint", input: "10 to 20 mph", wantKn: 15 * mphToKnots, wantOk: true},
		{name: "empty", input: "", wantOk: false},
		{name: "garbage", input: "breezy", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseWindSpeed(tt.input)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && math.Abs(got-tt.wantKn) > 1e-9 {
				t.Errorf("speed = %v, want %v", got, tt.wantKn)
			}
		})
	}
}
