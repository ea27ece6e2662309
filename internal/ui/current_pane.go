package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/regatta-terminal/internal/models"
	"github.com/ngmaloney/regatta-terminal/internal/tidal"
	"github.com/ngmaloney/regatta-terminal/internal/venues"
)

// renderCurrentPane renders the tidal current estimate at the start
// gun, the slack window, and the venue profile the estimate used.
func (m Model) renderCurrentPane(width int) string {
	var content strings.Builder

	title := titleStyle
	if m.activePane == PaneCurrent {
		title = activeTitleStyle
	}
	content.WriteString(title.Render(" Current "))
	content.WriteString("\n\n")

	start := m.startPoint()
	if start == nil {
		content.WriteString(mutedStyle.Render("No current estimate available"))
		return m.paneFrame(PaneCurrent).Width(width).Render(content.String())
	}

	content.WriteString(labelStyle.Render("At the start: "))
	if start.Current.IsPlaceholder {
		content.WriteString(fallbackSourceStyle.Render(
			fmt.Sprintf("~%.1f kn (no data)", start.Current.SpeedKn)))
	} else {
		content.WriteString(valueStyle.Render(
			fmt.Sprintf("%.1f kn, %s", start.Current.SpeedKn, start.Current.Phase.String())))
	}
	content.WriteString("\n\n")

	var high, low *models.TideExtreme
	if m.tide.Intel != nil {
		high, low = m.tide.Intel.NextHigh, m.tide.Intel.NextLow
	}
	slack := tidal.NewEstimator().FindSlackWindow(start.Time, high, low)
	content.WriteString(labelStyle.Render("Slack water: "))
	switch {
	case !slack.Known:
		content.WriteString(mutedStyle.Render("unknown"))
	case slack.IsSlackNow:
		content.WriteString(valueStyle.Render(fmt.Sprintf("now (%s water)", slackKindLabel(slack.SlackKind))))
	case slack.MinutesToSlack >= 0:
		content.WriteString(valueStyle.Render(
			fmt.Sprintf("in %d min (%s water)", slack.MinutesToSlack, slackKindLabel(slack.SlackKind))))
	default:
		content.WriteString(valueStyle.Render(
			fmt.Sprintf("%d min ago (%s water)", -slack.MinutesToSlack, slackKindLabel(slack.SlackKind))))
	}
	content.WriteString("\n\n")

	factor := tidal.SpringNeapFactor(start.Time)
	content.WriteString(labelStyle.Render("Spring/neap: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f%% toward springs", factor*100)))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Venue: "))
	if profile := m.venueProfile(); profile != nil {
		content.WriteString(valueStyle.Render(fmt.Sprintf("%s (%.1f-%.1f kn max)",
			profile.Name, profile.MaxNeapCurrentKn, profile.MaxSpringCurrentKn)))
	} else {
		content.WriteString(mutedStyle.Render("no profile matched"))
	}
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Tide source: "))
	content.WriteString(m.sourceLabel(m.result.Sources.Tide))

	return m.paneFrame(PaneCurrent).Width(width).Render(content.String())
}

// startPoint returns the start-milestone timeline point
func (m Model) startPoint() *models.TimelinePoint {
	for i := range m.result.Points {
		p := &m.result.Points[i]
		if p.IsMilestone && p.Milestone == models.MilestoneStart {
			return p
		}
	}
	return nil
}

// venueProfile resolves the profile for the configured coordinates,
// including any profiles loaded from the database.
func (m Model) venueProfile() *venues.AreaProfile {
	if !m.cfg.HasVenue {
		return nil
	}
	if len(m.extraProfiles) == 0 {
		return venues.Resolve(m.cfg.VenueLat, m.cfg.VenueLng)
	}
	all := append(venues.Catalog(), m.extraProfiles...)
	return venues.ResolveAmong(all, m.cfg.VenueLat, m.cfg.VenueLng)
}

func slackKindLabel(k models.TideKind) string {
	if k == models.TideHigh {
		return "high"
	}
	return "low"
}
