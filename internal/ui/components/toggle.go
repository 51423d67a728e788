package components

import (
	"github.com/abhisek/lenslab/internal/ui/theme"
)

// Toggle is a labelled on/off switch bound to a single key.
type Toggle struct {
	Key   string
	Label string
	On    bool
}

// NewToggle creates a toggle in the off state.
func NewToggle(key, label string) Toggle {
	return Toggle{Key: key, Label: label}
}

// Flip inverts the toggle when key matches its binding and reports
// whether it did.
func (t *Toggle) Flip(key string) bool {
	if key != t.Key {
		return false
	}
	t.On = !t.On
	return true
}

// View renders the toggle as a pill: "[h] Help".
func (t Toggle) View() string {
	label := "[" + t.Key + "] " + t.Label
	if t.On {
		return theme.ToggleOn.Render(label)
	}
	return theme.ToggleOff.Render(label)
}
