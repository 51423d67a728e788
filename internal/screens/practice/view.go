package practice

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lenslab/internal/optics"
	"github.com/abhisek/lenslab/internal/problemgen"
	"github.com/abhisek/lenslab/internal/ui/components"
	"github.com/abhisek/lenslab/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	rec := s.rec

	var sections []string

	difficulty := "Challenging"
	if rec.IsEasyProblem() {
		difficulty = "Easy"
	}
	sections = append(sections,
		theme.Subtitle.Render("Difficulty: ")+theme.Label.Render(difficulty),
		components.Card("Problem", theme.Body.Render(rec.Problem()), cw, false),
		s.help.View()+" "+s.answers.View()+" "+s.controls.View(),
	)

	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}
	if s.help.On {
		sections = append(sections, components.Card("Given", renderGiven(rec), cw, false))
	}
	if s.solving || s.results != nil {
		sections = append(sections, components.Card("Your answers", s.renderSolve(cw), cw, s.solving))
	}
	if s.answers.On {
		sections = append(sections, components.Card("Answers", renderAnswers(rec), cw, false))
	}
	if s.controls.On {
		sections = append(sections, components.Card("Controls", "Seed "+s.seedInput.View(), cw, true))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(strings.Join(sections, "\n\n"))
}

func renderGiven(rec *problemgen.Record) string {
	var lines []string
	for _, key := range rec.GivenInfo() {
		lines = append(lines, "• "+rec.DetailedInfo(key))
	}
	lines = append(lines, "", theme.Label.Render("Equations"))
	lines = append(lines, rec.Equations()...)
	return strings.Join(lines, "\n")
}

func renderAnswers(rec *problemgen.Record) string {
	var lines []string
	for _, q := range rec.Partition().Unknowns() {
		answer, _ := rec.Answer(q)
		lines = append(lines, "• "+answer)
	}

	salt := rec.SALT()
	lines = append(lines, "",
		theme.Label.Render("Image"),
		fmt.Sprintf("Size: %s", salt.Size),
		fmt.Sprintf("Attitude: %s", salt.Attitude),
		fmt.Sprintf("Location: %s", salt.Location),
		"Type: "+typeBadge(salt.Type),
	)
	return strings.Join(lines, "\n")
}

func (s *PracticeScreen) renderSolve(cw int) string {
	unknowns := s.rec.Partition().Unknowns()
	var lines []string
	correct := 0
	for i, q := range unknowns {
		label := string(q)
		if unit := q.Unit(); unit != "" {
			label += " (" + unit + ")"
		}
		label = fmt.Sprintf("%-8s", label)

		switch right, done := s.results[q]; {
		case done && right:
			correct++
			lines = append(lines, label+theme.Correct.Render("✓ correct"))
		case done:
			answer, _ := s.rec.Answer(q)
			lines = append(lines, label+theme.Incorrect.Render("✗ ")+theme.Hint.Render(answer))
		case s.solving && i == s.solveIdx:
			lines = append(lines, label+s.answerInput.View())
		default:
			lines = append(lines, theme.Hint.Render(label+"…"))
		}
	}
	bar := components.ScoreBar{Correct: correct, Total: len(unknowns), Width: min(cw-6, 40)}
	lines = append(lines, "", bar.View())
	return strings.Join(lines, "\n")
}

func typeBadge(t optics.ImageType) string {
	switch t {
	case optics.Real:
		return theme.RealImage.Render(string(t))
	case optics.Virtual:
		return theme.VirtualImage.Render(string(t))
	default:
		return theme.NoImage.Render(string(t))
	}
}

func formatSeed(seed int64) string {
	return strconv.FormatInt(seed, 10)
}
