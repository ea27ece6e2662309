package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/regatta-terminal/internal/forecast"
	"github.com/ngmaloney/regatta-terminal/internal/models"
	"github.com/ngmaloney/regatta-terminal/internal/snapshots"
	"github.com/ngmaloney/regatta-terminal/internal/tidal"
	"github.com/ngmaloney/regatta-terminal/internal/timeline"
	"github.com/ngmaloney/regatta-terminal/internal/venues"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Fetching live forecast data
	StateDisplay                 // Display the synthesized timeline
	StateError                   // Error state
)

// ActivePane represents which pane is currently focused
type ActivePane int

const (
	PaneTimeline ActivePane = iota
	PaneCurrent
	PaneTide
)

// Config carries the race parameters the commands parse from flags
type Config struct {
	RaceTime             time.Time
	WarningOffsetMinutes int
	DurationMinutes      int

	VenueLat float64
	VenueLng float64
	HasVenue bool

	TideStationID string
	DBPath        string
}

// Model represents the application's state
type Model struct {
	cfg        Config
	state      AppState
	activePane ActivePane
	width      int
	height     int
	err        error

	spinner spinner.Model

	// API clients
	windClient forecast.WindClient
	tideClient forecast.TideClient

	// Saved snapshots; nil when the database could not be opened
	store    *snapshots.Store
	venueKey string

	// Venue profiles loaded from the database, merged with the
	// built-in catalog during synthesis
	extraProfiles []venues.AreaProfile

	// Data
	wind models.WindPayload
	tide models.TidePayload

	// Loading states
	loadingWind bool
	loadingTide bool

	result timeline.Result
}

// NewModel creates a new application model. The snapshot store and
// stored venue profiles are optional; fetch failures fall back to
// whatever was available.
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		cfg:         cfg,
		state:       StateLoading,
		activePane:  PaneTimeline,
		spinner:     s,
		windClient:  forecast.NewWindClient(),
		tideClient:  forecast.NewTideClient(),
		loadingWind: true,
		loadingTide: true,
	}

	m.venueKey = venueKeyFor(cfg)

	if cfg.DBPath != "" {
		if store, err := snapshots.Open(cfg.DBPath); err == nil {
			m.store = store
		}
		if profiles, err := venues.LoadProfiles(cfg.DBPath); err == nil {
			m.extraProfiles = profiles
		}
	}

	return m
}

// venueKeyFor returns the string snapshots are keyed by: the matched
// venue name when the coordinates resolve, otherwise the coordinates
// themselves.
func venueKeyFor(cfg Config) string {
	if !cfg.HasVenue {
		return "default"
	}
	if p := venues.Resolve(cfg.VenueLat, cfg.VenueLng); p != nil {
		return p.Name
	}
	return fmt.Sprintf("%.4f,%.4f", cfg.VenueLat, cfg.VenueLng)
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchWind(m.windClient, m.cfg.VenueLat, m.cfg.VenueLng),
		fetchTide(m.tideClient, m.cfg.TideStationID, m.cfg.RaceTime),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case windFetchedMsg:
		m.loadingWind = false
		m.wind = m.resolveWind(msg)
		return m.maybeSynthesize(), nil

	case tideFetchedMsg:
		m.loadingTide = false
		m.tide = m.resolveTide(msg)
		return m.maybeSynthesize(), nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			if m.state == StateDisplay {
				m.activePane = (m.activePane + 1) % 3
			}
			return m, nil
		case "r":
			if m.state == StateDisplay || m.state == StateError {
				m.state = StateLoading
				m.err = nil
				m.loadingWind = true
				m.loadingTide = true
				return m, tea.Batch(
					m.spinner.Tick,
					fetchWind(m.windClient, m.cfg.VenueLat, m.cfg.VenueLng),
					fetchTide(m.tideClient, m.cfg.TideStationID, m.cfg.RaceTime),
				)
			}
			return m, nil
		}
		return m, nil
	}

	if m.state == StateLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// resolveWind turns a fetch result into the wind payload, preferring
// the live series and falling back to the saved range.
func (m Model) resolveWind(msg windFetchedMsg) models.WindPayload {
	if msg.err == nil && len(msg.series) > 0 {
		m.saveWindRange(msg.series)
		return models.WindPayload{Series: msg.series}
	}
	if m.store != nil {
		if r, err := m.store.LatestWindRange(m.venueKey); err == nil && r != nil {
			return models.WindPayload{Range: r}
		}
	}
	return models.WindPayload{}
}

// resolveTide turns a fetch result into the tide payload, preferring
// live intel and falling back to the saved snapshot.
func (m Model) resolveTide(msg tideFetchedMsg) models.TidePayload {
	if msg.err == nil && msg.intel != nil && (msg.intel.NextHigh != nil || msg.intel.NextLow != nil) {
		m.saveTideSnapshot(msg.intel)
		return models.TidePayload{Intel: msg.intel}
	}
	if m.store != nil {
		if snap, err := m.store.LatestTideSnapshot(m.venueKey); err == nil && snap != nil {
			return models.TidePayload{Snapshot: snap}
		}
	}
	return models.TidePayload{}
}

// saveWindRange condenses a live series into a min/max range for the
// next run. Save failures are ignored; snapshots are best effort.
func (m Model) saveWindRange(series []models.WindSample) {
	if m.store == nil || len(series) == 0 {
		return
	}
	r := models.WindRange{MinKn: series[0].SpeedKn, MaxKn: series[0].SpeedKn}
	for _, s := range series {
		if s.SpeedKn < r.MinKn {
			r.MinKn = s.SpeedKn
		}
		if s.SpeedKn > r.MaxKn {
			r.MaxKn = s.SpeedKn
		}
	}
	r.Direction = cardinalFromDegrees(series[0].DirectionDeg)
	_ = m.store.SaveWindRange(m.venueKey, r, time.Now())
}

// saveTideSnapshot records a coarse tide state derived from live
// extremes so the next run has a fallback.
func (m Model) saveTideSnapshot(intel *models.TideIntel) {
	if m.store == nil {
		return
	}
	now := time.Now()

	state := models.TideStateSlack
	switch {
	case intel.NextHigh != nil && (intel.NextLow == nil || intel.NextHigh.Time.Before(intel.NextLow.Time)):
		state = models.TideStateFlooding
	case intel.NextLow != nil:
		state = models.TideStateEbbing
	}

	snap := models.TideSnapshot{State: state, SavedAt: now}

	var extremes []models.TideExtreme
	if intel.NextHigh != nil {
		extremes = append(extremes, *intel.NextHigh)
	}
	if intel.NextLow != nil {
		extremes = append(extremes, *intel.NextLow)
	}
	if before, after, ok := tidal.Bracket(now, extremes); ok {
		if h, _, ok := tidal.InterpolateHeight(now, before, after); ok {
			snap.HeightM = h
		}
	}

	_ = m.store.SaveTideSnapshot(m.venueKey, snap)
}

// maybeSynthesize builds the timeline once both fetches have resolved
func (m Model) maybeSynthesize() Model {
	if m.loadingWind || m.loadingTide {
		return m
	}
	m.result = timeline.Synthesize(timeline.Input{
		RaceTime:             m.cfg.RaceTime,
		WarningOffsetMinutes: m.cfg.WarningOffsetMinutes,
		DurationMinutes:      m.cfg.DurationMinutes,
		VenueLat:             m.cfg.VenueLat,
		VenueLng:             m.cfg.VenueLng,
		HasVenue:             m.cfg.HasVenue,
		ExtraProfiles:        m.extraProfiles,
		Wind:                 m.wind,
		Tide:                 m.tide,
	})
	m.state = StateDisplay
	return m
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewLoading renders the fetch progress screen
func (m Model) viewLoading() string {
	title := titleStyle.Render("⛵ Regatta Terminal")

	var lines []string
	lines = append(lines, title, "")
	lines = append(lines, fmt.Sprintf("%s Preparing race conditions...", m.spinner.View()), "")

	if m.loadingWind {
		lines = append(lines, "⏳ Fetching wind forecast")
	} else {
		lines = append(lines, "✓ Wind resolved: "+m.windSourceLabel())
	}
	if m.loadingTide {
		lines = append(lines, "⏳ Fetching tide predictions")
	} else {
		lines = append(lines, "✓ Tide resolved: "+m.tideSourceLabel())
	}

	lines = append(lines, "", helpStyle.Render("Q: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")).
		Bold(true).
		Render("✗ Error")

	errorMsg := "An unknown error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	help := helpStyle.Render("R: Retry • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}

// viewDisplay renders the main three-pane display
func (m Model) viewDisplay() string {
	var sections []string

	header := titleStyle.Render(fmt.Sprintf("⛵ Race conditions — %s", m.cfg.RaceTime.Format("Mon Jan 2 15:04 MST")))
	sections = append(sections, header)

	sections = append(sections, m.renderSummaryLine(), "")

	if len(m.result.Points) == 0 {
		sections = append(sections, mutedStyle.Render("Insufficient input: no race time set"))
	} else {
		left := m.renderTimelinePane(m.paneWidth(2))
		right := lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderCurrentPane(m.paneWidth(2)),
			m.renderTidePane(m.paneWidth(2)),
		)
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}

	help := helpStyle.Render("Tab: Switch panes • R: Refresh • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSummaryLine renders the headline ranges above the panes
func (m Model) renderSummaryLine() string {
	s := m.result.Summary
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		labelStyle.Render("Wind:"),
		valueStyle.Render(fmt.Sprintf("%.0f-%.0f kn", s.WindMinKn, s.WindMaxKn)),
		labelStyle.Render("Max current:"),
		valueStyle.Render(fmt.Sprintf("%.1f kn", s.CurrentMaxKn)),
		labelStyle.Render("Max waves:"),
		valueStyle.Render(fmt.Sprintf("%.1f m", s.WaveMaxM)),
	)
}

// paneWidth divides the terminal width between n panes
func (m Model) paneWidth(n int) int {
	w := m.width/n - 2
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) windSourceLabel() string {
	return m.sourceLabel(timeline.ResolveWindSource(m.wind))
}

func (m Model) tideSourceLabel() string {
	return m.sourceLabel(timeline.ResolveTideSource(m.tide))
}

// sourceLabel renders a source name, coloring fallbacks so degraded
// data is never mistaken for a live forecast.
func (m Model) sourceLabel(s models.SourceKind) string {
	if s == models.SourceLiveForecast {
		return liveSourceStyle.Render(s.String())
	}
	return fallbackSourceStyle.Render(s.String())
}

// paneFrame picks the border style for a pane based on focus
func (m Model) paneFrame(pane ActivePane) lipgloss.Style {
	if m.activePane == pane {
		return activePaneStyle
	}
	return paneStyle
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// cardinalFromDegrees maps a bearing onto the 16-point compass
func cardinalFromDegrees(deg float64) string {
	for deg < 0 {
		deg += 360
	}
	idx := int((deg+11.25)/22.5) % 16
	return compassPoints[idx]
}
