package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/lenslab/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	practice := &stubScreen{title: "Practice"}
	r.Push(practice)
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, practice, r.Active())
	assert.True(t, practice.initRan)
	assert.Equal(t, []string{"Home", "Practice"}, r.Breadcrumb())

	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Pop()
	assert.Equal(t, 1, r.Depth())
}

func TestNavigationMessages(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	practice := &stubScreen{title: "Practice"}
	r.Update(PushScreenMsg{Screen: practice})
	assert.Same(t, practice, r.Active())
	assert.Equal(t, []string{"Home", "Practice"}, r.Breadcrumb())

	r.Update(PopScreenMsg{})
	assert.Same(t, home, r.Active())
	assert.Empty(t, home.got, "navigation messages are not forwarded")
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)
	practice := &stubScreen{title: "Practice"}
	r.Push(practice)

	r.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	assert.Len(t, practice.got, 1)
	assert.Empty(t, home.got)
	assert.Equal(t, "Practice", r.View(80, 24))
}
