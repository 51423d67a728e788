package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lenslab/internal/ui/theme"
)

// ScoreBar shows how many of a problem's unknowns were answered
// correctly.
type ScoreBar struct {
	Correct int
	Total   int
	Width   int
}

// Fraction returns Correct/Total clamped to [0, 1].
func (s ScoreBar) Fraction() float64 {
	if s.Total <= 0 {
		return 0
	}
	return min(max(float64(s.Correct)/float64(s.Total), 0), 1)
}

// View renders the bar followed by "n/m".
func (s ScoreBar) View() string {
	count := fmt.Sprintf("  %d/%d", s.Correct, s.Total)
	barWidth := max(s.Width-lipgloss.Width(count), 4)

	filled := int(float64(barWidth) * s.Fraction())
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}
