package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/regatta-terminal/internal/models"
)

// renderTidePane renders the tide information pane
func (m Model) renderTidePane(width int) string {
	var content strings.Builder

	title := titleStyle
	if m.activePane == PaneTide {
		title = activeTitleStyle
	}
	content.WriteString(title.Render(" Tide "))
	content.WriteString("\n\n")

	if !m.tide.HasAny() {
		content.WriteString(mutedStyle.Render("No tide data available"))
		return m.paneFrame(PaneTide).Width(width).Render(content.String())
	}

	if m.tide.Intel != nil {
		m.writeExtreme(&content, "Next high", m.tide.Intel.NextHigh)
		m.writeExtreme(&content, "Next low", m.tide.Intel.NextLow)
		if m.tide.Intel.HasSpeedHint {
			content.WriteString(labelStyle.Render("Station max current: "))
			content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f kn", m.tide.Intel.SpeedHintKn)))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	} else if m.tide.Snapshot != nil {
		snap := m.tide.Snapshot
		content.WriteString(labelStyle.Render("Saved state: "))
		content.WriteString(valueStyle.Render(string(snap.State)))
		if snap.Direction != "" {
			content.WriteString(valueStyle.Render(" " + snap.Direction))
		}
		content.WriteString("\n")
		content.WriteString(labelStyle.Render("Saved height: "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f m", snap.HeightM)))
		content.WriteString("\n")
		content.WriteString(mutedStyle.Render(fmt.Sprintf("Recorded %s", snap.SavedAt.Format("Jan 2 15:04"))))
		content.WriteString("\n\n")
	}

	content.WriteString(labelStyle.Render("Height at milestones"))
	content.WriteString("\n")
	wrote := false
	for _, p := range m.result.Points {
		if !p.IsMilestone || !p.HasTideHeight {
			continue
		}
		content.WriteString(fmt.Sprintf("  %s  %-8s %s\n",
			valueStyle.Render(p.Time.Format("15:04")),
			p.Label,
			valueStyle.Render(fmt.Sprintf("%.2f m", p.TideHeightM))))
		wrote = true
	}
	if !wrote {
		content.WriteString(mutedStyle.Render("  none available\n"))
	}

	return m.paneFrame(PaneTide).Width(width).Render(content.String())
}

// writeExtreme appends one labelled tide extreme line, or nothing when
// the extreme is unknown.
func (m Model) writeExtreme(content *strings.Builder, label string, ex *models.TideExtreme) {
	if ex == nil {
		return
	}
	content.WriteString(labelStyle.Render(label + ": "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%s  %.2f m", ex.Time.Format("15:04"), ex.Height)))
	content.WriteString("\n")
}
