package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/talentmatch/talentmatch/internal/router"
	"github.com/talentmatch/talentmatch/internal/screen"
	"github.com/talentmatch/talentmatch/internal/store"
	"github.com/talentmatch/talentmatch/internal/ui/layout"
	"github.com/talentmatch/talentmatch/internal/ui/theme"
)

type historyLoadedMsg struct {
	Runs    []store.InterviewEventRecord
	Answers map[string][]store.AnswerEventRecord // sessionID → answers
	Err     error
}

// HistoryScreen lists past interview runs from the local event log,
// with per-answer details on expand.
type HistoryScreen struct {
	eventRepo store.EventRepo
	runs      []store.InterviewEventRecord
	answers   map[string][]store.AnswerEventRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		events, err := s.eventRepo.QueryInterviewEvents(ctx, store.QueryOpts{Limit: 100})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// One row per run: keep the terminal event, skip the start.
		runs := make([]store.InterviewEventRecord, 0, len(events))
		for _, e := range events {
			if e.Action == "start" {
				continue
			}
			runs = append(runs, e)
		}

		answers := make(map[string][]store.AnswerEventRecord)
		for _, r := range runs {
			if as, err := s.eventRepo.AnswersBySession(ctx, r.SessionID); err == nil {
				answers[r.SessionID] = as
			}
		}

		return historyLoadedMsg{Runs: runs, Answers: answers}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No interviews yet. Try a practice run!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.runs {
		dateStr := run.Timestamp.Format("Jan 02, 2006")
		mins := run.DurationSecs / 60
		secs := run.DurationSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		outcome := fmt.Sprintf("%d/100", run.FinalScore)
		if run.Action == "expire" {
			outcome += "  (time ran out)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d/%d answered  %s",
			prefix, dateStr, run.Mode, durationStr,
			run.AnsweredCount, run.QuestionCount, outcome)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			runAnswers := s.answers[run.SessionID]
			if len(runAnswers) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No answers recorded")))
				b.WriteString("\n")
			}
			for _, a := range runAnswers {
				text := a.QuestionText
				if len(text) > 48 {
					text = text[:45] + "..."
				}
				answerLine := fmt.Sprintf("    %s  scored %d", text, a.Score)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.ScoreStyle(a.Score).Bold(false).Render(answerLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
