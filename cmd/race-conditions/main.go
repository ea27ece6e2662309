// Command race-conditions prints the synthesized race timeline once
// and exits, for scripts and terminals where the TUI is unwanted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ngmaloney/regatta-terminal/internal/database"
	"github.com/ngmaloney/regatta-terminal/internal/forecast"
	"github.com/ngmaloney/regatta-terminal/internal/models"
	"github.com/ngmaloney/regatta-terminal/internal/snapshots"
	"github.com/ngmaloney/regatta-terminal/internal/timeline"
	"github.com/ngmaloney/regatta-terminal/internal/venues"
)

func main() {
	raceTime := flag.String("race", "", "Race start time, e.g. 2026-06-20 14:00 or RFC3339 (required)")
	warning := flag.Int("warning", 5, "Minutes between the warning signal and the start gun (0 for none)")
	duration := flag.Int("duration", 90, "Expected race duration in minutes")
	venue := flag.String("venue", "", "Venue coordinates as lat,lng (e.g. 50.76,-1.29)")
	station := flag.String("station", "", "NOAA tide station ID for tide predictions")
	dbPath := flag.String("db", database.DBPath(), "Path to the snapshot database")
	flag.Parse()

	if *raceTime == "" {
		fmt.Fprintln(os.Stderr, "Error: -race is required")
		flag.Usage()
		os.Exit(1)
	}
	start, err := parseRaceTime(*raceTime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unparsable race time %q (use 2006-01-02 15:04 or RFC3339)\n", *raceTime)
		os.Exit(1)
	}

	in := timeline.Input{
		RaceTime:             start,
		WarningOffsetMinutes: *warning,
		DurationMinutes:      *duration,
	}

	if *venue != "" {
		lat, lng, err := parseCoordinates(*venue)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unparsable venue %q (use lat,lng)\n", *venue)
			os.Exit(1)
		}
		in.VenueLat = lat
		in.VenueLng = lng
		in.HasVenue = true
	}

	var store *snapshots.Store
	if s, err := snapshots.Open(*dbPath); err == nil {
		store = s
		defer store.Close()
	}
	if profiles, err := venues.LoadProfiles(*dbPath); err == nil {
		in.ExtraProfiles = profiles
	}

	venueKey := venueKeyFor(in)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	in.Wind = resolveWind(ctx, store, venueKey, in)
	in.Tide = resolveTide(ctx, store, venueKey, *station, start)

	result := timeline.Synthesize(in)
	if len(result.Points) == 0 {
		fmt.Fprintln(os.Stderr, "Insufficient input: no timeline produced")
		os.Exit(1)
	}

	printTimeline(result)
}

// resolveWind fetches the live series, falling back to any saved range
func resolveWind(ctx context.Context, store *snapshots.Store, venueKey string, in timeline.Input) models.WindPayload {
	if in.HasVenue {
		series, err := forecast.NewWindClient().GetWindSeries(ctx, in.VenueLat, in.VenueLng)
		if err == nil && len(series) > 0 {
			return models.WindPayload{Series: series}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "wind forecast unavailable: %v\n", err)
		}
	}
	if store != nil {
		if r, err := store.LatestWindRange(venueKey); err == nil && r != nil {
			return models.WindPayload{Range: r}
		}
	}
	return models.WindPayload{}
}

// resolveTide fetches live tide intel, falling back to any saved snapshot
func resolveTide(ctx context.Context, store *snapshots.Store, venueKey, station string, after time.Time) models.TidePayload {
	if station != "" {
		intel, err := forecast.NewTideClient().GetTideIntel(ctx, station, after)
		if err == nil && intel != nil && (intel.NextHigh != nil || intel.NextLow != nil) {
			return models.TidePayload{Intel: intel}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "tide predictions unavailable: %v\n", err)
		}
	}
	if store != nil {
		if snap, err := store.LatestTideSnapshot(venueKey); err == nil && snap != nil {
			return models.TidePayload{Snapshot: snap}
		}
	}
	return models.TidePayload{}
}

func printTimeline(result timeline.Result) {
	s := result.Summary
	fmt.Printf("Wind %.0f-%.0f kn   Max current %.1f kn   Max waves %.1f m\n",
		s.WindMinKn, s.WindMaxKn, s.CurrentMaxKn, s.WaveMaxM)
	fmt.Printf("Sources: wind %s, tide %s\n\n", result.Sources.Wind, result.Sources.Tide)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tPOINT\tWIND\tCURRENT\tTIDE\tWAVES")
	for _, p := range result.Points {
		wind := fmt.Sprintf("%.0f kn", p.Wind.SpeedKn)
		if p.Wind.HasGusts {
			wind = fmt.Sprintf("%.0f kn g%.0f", p.Wind.SpeedKn, p.Wind.GustsKn)
		}

		current := fmt.Sprintf("%.1f kn %s", p.Current.SpeedKn, p.Current.Phase)
		if p.Current.IsPlaceholder {
			current = fmt.Sprintf("~%.1f kn (no data)", p.Current.SpeedKn)
		}

		tide := "-"
		if p.HasTideHeight {
			tide = fmt.Sprintf("%.2f m", p.TideHeightM)
		}

		waves := "-"
		if p.HasWaveHeight {
			waves = fmt.Sprintf("%.1f m", p.WaveHeightM)
			if p.HasWavePeriod {
				waves = fmt.Sprintf("%.1f m @ %.0fs", p.WaveHeightM, p.WavePeriodS)
			}
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Time.Format("15:04"), p.Label, wind, current, tide, waves)
	}
	w.Flush()
}

func venueKeyFor(in timeline.Input) string {
	if !in.HasVenue {
		return "default"
	}
	if p := venues.Resolve(in.VenueLat, in.VenueLng); p != nil {
		return p.Name
	}
	return fmt.Sprintf("%.4f,%.4f", in.VenueLat, in.VenueLng)
}

func parseRaceTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}

func parseCoordinates(s string) (lat, lng float64, err error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("missing comma in %q", s)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}
