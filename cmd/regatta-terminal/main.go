package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/regatta-terminal/internal/database"
	"github.com/ngmaloney/regatta-terminal/internal/ui"
	"github.com/ngmaloney/regatta-terminal/internal/venues"
)

func main() {
	raceTime := flag.String("race", "", "Race start time, e.g. 2026-06-20 14:00 or RFC3339")
	warning := flag.Int("warning", 5, "Minutes between the warning signal and the start gun (0 for none)")
	duration := flag.Int("duration", 90, "Expected race duration in minutes")
	venue := flag.String("venue", "", "Venue coordinates as lat,lng (e.g. 50.76,-1.29)")
	station := flag.String("station", "", "NOAA tide station ID for tide predictions (e.g. 8443970)")
	dbPath := flag.String("db", database.DBPath(), "Path to the snapshot database")
	importVenues := flag.String("import-venues", "", "Import venue profiles from a shapefile and exit")
	flag.Parse()

	if *importVenues != "" {
		n, err := venues.ImportShapefile(*importVenues, *dbPath)
		if err != nil {
			fmt.Printf("Error importing venues: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d venue profiles\n", n)
		return
	}

	cfg := ui.Config{
		WarningOffsetMinutes: *warning,
		DurationMinutes:      *duration,
		TideStationID:        *station,
		DBPath:               *dbPath,
	}

	if *raceTime != "" {
		t, err := parseRaceTime(*raceTime)
		if err != nil {
			fmt.Printf("Error: unparsable race time %q (use 2006-01-02 15:04 or RFC3339)\n", *raceTime)
			os.Exit(1)
		}
		cfg.RaceTime = t
	}

	if *venue != "" {
		lat, lng, err := parseCoordinates(*venue)
		if err != nil {
			fmt.Printf("Error: unparsable venue %q (use lat,lng)\n", *venue)
			os.Exit(1)
		}
		cfg.VenueLat = lat
		cfg.VenueLng = lng
		cfg.HasVenue = true
	}

	p := tea.NewProgram(ui.NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
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
