package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lenslab/internal/problemgen"
	"github.com/abhisek/lenslab/internal/router"
	"github.com/abhisek/lenslab/internal/screen"
	"github.com/abhisek/lenslab/internal/screens/guide"
	"github.com/abhisek/lenslab/internal/screens/practice"
	"github.com/abhisek/lenslab/internal/ui/components"
	"github.com/abhisek/lenslab/internal/ui/layout"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. The first practice session opens on seed;
// later ones draw a fresh seed from newSeed.
func New(engine *problemgen.Engine, newSeed practice.SeedFunc, seed int64) *HomeScreen {
	first := true
	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			start := seed
			if !first {
				s, err := newSeed()
				if err == nil {
					start = s
				}
			}
			first = false
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(engine, newSeed, start)}
			}
		}},
		{Label: "SALT GUIDE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: guide.New()}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	if engine == nil {
		items[0].Disabled = true
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height+8)
	cw := contentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderLenses(cw))
	}
	sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw, h.menu.DisabledSet()))

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
