package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lenslab/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all cards on a
// screen, so stacked cards line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 90 {
		w = 90
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card renders body in a rounded box of outer width w with an optional
// title line. Active cards get the highlight border.
func Card(title, body string, w int, active bool) string {
	style := theme.Card
	if active {
		style = theme.ActiveCard
	}
	content := body
	if title != "" {
		content = theme.Label.Render(title) + "\n" + body
	}
	return style.Width(w).Render(content)
}

// CabinetFrame wraps content in a double-border frame, centered in the
// given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
