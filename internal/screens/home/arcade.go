package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lenslab/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` ██╗     ███████╗███╗   ██╗███████╗  ██╗      █████╗ ██████╗
 ██║     ██╔════╝████╗  ██║██╔════╝  ██║     ██╔══██╗██╔══██╗
 ██║     █████╗  ██╔██╗ ██║███████╗  ██║     ███████║██████╔╝
 ██║     ██╔══╝  ██║╚██╗██║╚════██║  ██║     ██╔══██║██╔══██╗
 ███████╗███████╗██║ ╚████║███████║  ███████╗██║  ██║██████╔╝
 ╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝  ╚══════╝╚═╝  ╚═╝╚═════╝`

const arcadeTitleCompact = "L · E · N · S   L · A · B"

// Lens diagrams shown under the title: an object arrow on the left, rays
// through the lens, and the focal point.
const convergingArt = `  ▲       │
  │ ━━━━━━( )━━━━━━╲
  │       ( )        ●  F
  ┷ ━━━━━━( )━━━━━━╱
          │`

const divergingArt = `  ▲       │       ╱
  │ ━━━━━━) (━━━━━━
  │  F' ● ) (
  ┷ ━━━━━━) (━━━━━━
          │       ╲`

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 70)
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderLenses draws both lens diagrams side by side.
func renderLenses(cw int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary)
	pair := lipgloss.JoinHorizontal(lipgloss.Top,
		style.Render(convergingArt),
		"     ",
		style.Render(divergingArt),
	)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(pair)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)

	normalBtn := selectedBtn.
		Bold(false).
		Foreground(theme.Text).
		UnsetBackground().
		BorderForeground(theme.Border)

	disabledBtn := normalBtn.Foreground(theme.TextDim)

	buttons := make([]string, 0, len(items))
	for i, label := range items {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderCabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).   // account for border chars
		Height(height-2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
