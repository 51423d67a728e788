// Package practice is the main problem screen: one generated problem
// with toggleable help, answers and seed controls.
package practice

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lenslab/internal/problemgen"
	"github.com/abhisek/lenslab/internal/rng"
	"github.com/abhisek/lenslab/internal/screen"
	"github.com/abhisek/lenslab/internal/ui/components"
	"github.com/abhisek/lenslab/internal/ui/layout"
)

// SeedFunc draws a fresh seed for the "new problem" key.
type SeedFunc func() (int64, error)

// PracticeScreen shows one problem at a time.
type PracticeScreen struct {
	engine  *problemgen.Engine
	newSeed SeedFunc
	rec     *problemgen.Record

	help     components.Toggle
	answers  components.Toggle
	controls components.Toggle

	seedInput components.TextInput

	// Answer checking walks the unknowns in order.
	solving     bool
	solveIdx    int
	answerInput components.TextInput
	results     map[problemgen.Quantity]bool

	errMsg string
}

var (
	_ screen.Screen          = (*PracticeScreen)(nil)
	_ screen.KeyHintProvider = (*PracticeScreen)(nil)
	_ screen.StatusProvider  = (*PracticeScreen)(nil)
	_ screen.InputCapturer   = (*PracticeScreen)(nil)
)

// New creates a PracticeScreen showing the problem for seed.
func New(engine *problemgen.Engine, newSeed SeedFunc, seed int64) *PracticeScreen {
	s := &PracticeScreen{
		engine:    engine,
		newSeed:   newSeed,
		help:      components.NewToggle("h", "Help"),
		answers:   components.NewToggle("a", "Answers"),
		controls:  components.NewToggle("c", "Controls"),
		seedInput: components.NewTextInput("seed, e.g. 42", 11, components.SeedChars),
	}
	s.load(seed)
	return s
}

// Record returns the problem on screen.
func (s *PracticeScreen) Record() *problemgen.Record {
	return s.rec
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) Status() string {
	return "seed " + formatSeed(s.rec.Seed())
}

func (s *PracticeScreen) CapturesInput() bool {
	return s.controls.On || s.solving
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.controls.On:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load seed"},
			{Key: "Esc", Description: "Close"},
		}
	case s.solving:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Stop"},
		}
	}
	return []layout.KeyHint{
		{Key: "n", Description: "New problem"},
		{Key: "s", Description: "Solve"},
		{Key: "h/a/c", Description: "Help/Answers/Controls"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case s.controls.On:
		return s.handleControlsKey(kmsg)
	case s.solving:
		return s.handleSolveKey(kmsg)
	}

	key := kmsg.String()
	switch key {
	case "n":
		seed, err := s.newSeed()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.load(seed)
	case "s":
		s.solving = true
		s.solveIdx = 0
		s.results = make(map[problemgen.Quantity]bool)
		s.answerInput = components.NewTextInput("value, fraction or \"none\"", 24, components.AnswerChars)
		return s, s.answerInput.Init()
	case "c":
		s.controls.Flip(key)
		s.seedInput.Reset()
		return s, s.seedInput.Init()
	default:
		if !s.help.Flip(key) {
			s.answers.Flip(key)
		}
	}
	return s, nil
}

func (s *PracticeScreen) handleControlsKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.controls.On = false
		return s, nil
	case "enter":
		seed, err := rng.ParseSeed(s.seedInput.Value())
		if err != nil {
			s.seedInput.SetError(err.Error())
			return s, nil
		}
		s.load(seed)
		s.controls.On = false
		return s, nil
	}

	var cmd tea.Cmd
	s.seedInput, cmd = s.seedInput.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) handleSolveKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	unknowns := s.rec.Partition().Unknowns()

	switch msg.String() {
	case "esc":
		s.solving = false
		return s, nil
	case "enter":
		if s.answerInput.Value() == "" {
			return s, nil
		}
		q := unknowns[s.solveIdx]
		s.results[q] = problemgen.CheckAnswer(s.answerInput.Value(), s.rec, q)
		s.solveIdx++
		s.answerInput.Reset()
		if s.solveIdx >= len(unknowns) {
			s.solving = false
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.answerInput, cmd = s.answerInput.Update(msg)
	return s, cmd
}

// load replaces the problem on screen and clears per-problem state.
func (s *PracticeScreen) load(seed int64) {
	s.rec = s.engine.Generate(seed)
	s.help.On, s.answers.On = false, false
	s.solving = false
	s.solveIdx = 0
	s.results = nil
	s.errMsg = ""
}
