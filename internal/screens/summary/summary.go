package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/talentmatch/talentmatch/internal/evaluate"
	iv "github.com/talentmatch/talentmatch/internal/interview"
	"github.com/talentmatch/talentmatch/internal/router"
	"github.com/talentmatch/talentmatch/internal/screen"
	"github.com/talentmatch/talentmatch/internal/ui/components"
	"github.com/talentmatch/talentmatch/internal/ui/layout"
	"github.com/talentmatch/talentmatch/internal/ui/theme"
)

// Screen displays the results of a finished interview run.
type Screen struct {
	session      *iv.Session
	mode         string
	backendScore *int // score reported by the backend, if finalized there
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the results screen for a completed session.
func New(session *iv.Session, mode string, backendScore *int) *Screen {
	return &Screen{session: session, mode: mode, backendScore: backendScore}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Results"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	sess := s.session
	if sess == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Interview complete"))
	b.WriteString("\n\n")

	score := sess.FinalScore
	if s.backendScore != nil {
		score = *s.backendScore
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.ScoreStyle(score).Render(fmt.Sprintf("Final score: %d / 100", score))))
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(score)/100, 40)
	bar.ShowPercent = false
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(evaluate.FeedbackFor(score)))
	b.WriteString("\n\n")

	mins := int(sess.Elapsed().Minutes())
	secs := int(sess.Elapsed().Seconds()) % 60
	statsLine := fmt.Sprintf("Answered: %d of %d        Time: %d:%02d",
		len(sess.Answers), len(sess.Questions), mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, q := range sess.Questions {
		a, answered := sess.AnswerFor(q.ID)

		label := q.Text
		if len(label) > 48 {
			label = label[:45] + "..."
		}

		var line string
		var style lipgloss.Style
		if answered {
			line = fmt.Sprintf("  %d. %s    %s", i+1, label,
				fmt.Sprintf("%d", a.Score))
			style = theme.ScoreStyle(a.Score)
		} else {
			line = fmt.Sprintf("  %d. %s    —", i+1, label)
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
