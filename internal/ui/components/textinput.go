package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lenslab/internal/ui/theme"
)

// Filters for TextInput.Allow.
var (
	// SeedChars admits an optionally signed integer.
	SeedChars = func(r rune) bool { return r == '-' || (r >= '0' && r <= '9') }

	// AnswerChars admits decimals, fractions, a unit and the words used
	// for an undefined quantity.
	AnswerChars = func(r rune) bool {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return true
		}
		return r == '-' || r == '.' || r == '/' || r == ' '
	}
)

// TextInput wraps bubbles/textinput with Lens Lab styling.
type TextInput struct {
	Model textinput.Model

	// Allow filters typed characters. Nil admits everything.
	Allow func(rune) bool

	submitted bool
	valid     bool
	errMsg    string
}

// NewTextInput creates a focused, styled text input.
func NewTextInput(placeholder string, charLimit int, allow func(rune) bool) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Allow: allow}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Typing clears any earlier verdict.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
		if t.Allow != nil {
			for _, r := range kmsg.Text {
				if !t.Allow(r) {
					return t, nil
				}
			}
		}
		t.submitted = false
		t.errMsg = ""
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with its verdict or error, if any.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	if t.errMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.errMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// SetError shows msg under the input until the next keystroke.
func (t *TextInput) SetError(msg string) {
	t.errMsg = msg
}

// Err returns the error currently shown, if any.
func (t TextInput) Err() string {
	return t.errMsg
}

// Reset clears the value, verdict and error.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.submitted = false
	t.errMsg = ""
}
