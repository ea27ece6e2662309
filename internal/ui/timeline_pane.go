package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
)

// renderTimelinePane renders the merged conditions timeline: a wind
// sparkline across the race window followed by one row per point.
func (m Model) renderTimelinePane(width int) string {
	var content strings.Builder

	title := titleStyle
	if m.activePane == PaneTimeline {
		title = activeTitleStyle
	}
	content.WriteString(title.Render(" Timeline "))
	content.WriteString("\n\n")

	if len(m.result.Points) == 0 {
		content.WriteString(mutedStyle.Render("No timeline available"))
		return m.paneFrame(PaneTimeline).Width(width).Render(content.String())
	}

	chartWidth := width - 6
	if chartWidth < 10 {
		chartWidth = 10
	}
	speeds := make([]float64, len(m.result.Points))
	for i, p := range m.result.Points {
		speeds[i] = p.Wind.SpeedKn
	}
	sl := sparkline.New(chartWidth, 3)
	sl.PushAll(speeds)
	sl.Draw()
	content.WriteString(mutedStyle.Render("Wind across window"))
	content.WriteString("\n")
	content.WriteString(sl.View())
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render(fmt.Sprintf("%-7s %-14s %-12s %-12s %s\n",
		"Time", "Point", "Wind", "Current", "Waves")))

	for _, p := range m.result.Points {
		wind := fmt.Sprintf("%.0f kn %s", p.Wind.SpeedKn, cardinalFromDegrees(p.Wind.DirectionDeg))
		if p.Wind.HasGusts {
			wind = fmt.Sprintf("%.0f-%.0fg kn", p.Wind.SpeedKn, p.Wind.GustsKn)
		}

		current := fmt.Sprintf("%.1f kn %s", p.Current.SpeedKn, p.Current.Phase.String())
		if p.Current.IsPlaceholder {
			current = fmt.Sprintf("~%.1f kn (no data)", p.Current.SpeedKn)
		}

		waves := "-"
		if p.HasWaveHeight {
			waves = fmt.Sprintf("%.1f m", p.WaveHeightM)
			if p.HasWavePeriod {
				waves = fmt.Sprintf("%.1f m @ %.0fs", p.WaveHeightM, p.WavePeriodS)
			}
		}

		label := p.Label
		row := fmt.Sprintf("%-7s %-14s %-12s %-12s %s",
			p.Time.Format("15:04"), label, wind, current, waves)

		if p.IsMilestone {
			content.WriteString(milestoneStyle.Render(row))
		} else {
			content.WriteString(valueStyle.Render(row))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Wind source: "))
	content.WriteString(m.sourceLabel(m.result.Sources.Wind))

	return m.paneFrame(PaneTimeline).Width(width).Render(content.String())
}
