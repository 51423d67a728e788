// Package guide shows the image classification rules as a reference
// card.
package guide

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/lenslab/internal/optics"
	"github.com/abhisek/lenslab/internal/screen"
	"github.com/abhisek/lenslab/internal/ui/components"
	"github.com/abhisek/lenslab/internal/ui/layout"
	"github.com/abhisek/lenslab/internal/ui/theme"
)

// GuideScreen lists where a thin lens forms its image.
type GuideScreen struct {
	lens optics.LensType
}

var _ screen.Screen = (*GuideScreen)(nil)

// New creates a GuideScreen starting on the converging lens.
func New() *GuideScreen {
	return &GuideScreen{lens: optics.Converging}
}

func (g *GuideScreen) Init() tea.Cmd {
	return nil
}

func (g *GuideScreen) Title() string {
	return "SALT Guide"
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch lens"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "left", "right":
			if g.lens == optics.Converging {
				g.lens = optics.Diverging
			} else {
				g.lens = optics.Converging
			}
		}
	}
	return g, nil
}

func (g *GuideScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	tabs := make([]string, 0, 2)
	for _, lens := range []optics.LensType{optics.Converging, optics.Diverging} {
		label := strings.ToUpper(lens.String()[:1]) + lens.String()[1:] + " lens"
		if lens == g.lens {
			tabs = append(tabs, theme.ToggleOn.Render(label))
		} else {
			tabs = append(tabs, theme.ToggleOff.Render(label))
		}
	}

	sections := []string{
		strings.Join(tabs, " "),
		RulesTable(g.lens),
		components.Card("Reading the table", legend, cw, false),
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(strings.Join(sections, "\n\n"))
}

const legend = `Size      image taller than the object: Larger, shorter: Smaller
Attitude  Inverted when the magnification is negative, else Upright
Location  where the image forms, measured from the lens
Type      Real images form on the far side and can be projected

Distances are magnitudes: f is the focal length and do the object distance.`

// RulesTable renders the location rules for lens in evaluation order.
func RulesTable(lens optics.LensType) string {
	rows := make([][]string, 0, 5)
	for _, r := range optics.Rules(lens) {
		rows = append(rows, []string{r.Condition, string(r.Location), string(r.Type)})
	}

	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Object position", "Image location", "Image type").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
