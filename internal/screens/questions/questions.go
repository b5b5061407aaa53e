package questions

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/identity"
	"github.com/talentmatch/talentmatch/internal/router"
	"github.com/talentmatch/talentmatch/internal/screen"
	"github.com/talentmatch/talentmatch/internal/ui/components"
	"github.com/talentmatch/talentmatch/internal/ui/layout"
	"github.com/talentmatch/talentmatch/internal/ui/theme"
)

type questionsLoadedMsg struct {
	Questions []api.Question
	Err       error
}

type questionSubmittedMsg struct {
	Question *api.Question
	Err      error
}

// Screen lets an expert review and author questions for one assigned
// interview session. Relevance scores are assigned by the backend after
// submission and show up on the next refresh.
type Screen struct {
	client     *api.Client
	profile    identity.Profile
	assignment api.Assignment
	interview  *api.Interview

	loading    bool
	list       []api.Question
	editing    bool
	editor     components.TextArea
	submitting bool
	status     string
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the question editor for one assignment.
func New(client *api.Client, profile identity.Profile, assignment api.Assignment, interview *api.Interview) *Screen {
	return &Screen{
		client:     client,
		profile:    profile,
		assignment: assignment,
		interview:  interview,
		loading:    true,
		editor:     components.NewTextArea("Type the question text...", 66, 5),
	}
}

func (s *Screen) Title() string {
	return "Questions"
}

func (s *Screen) Init() tea.Cmd {
	return s.load()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit question"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add question"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) load() tea.Cmd {
	s.loading = true
	client, sessionID := s.client, s.assignment.Session
	return func() tea.Msg {
		qs, err := client.QuestionsBySession(context.Background(), sessionID)
		return questionsLoadedMsg{Questions: qs, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = "Could not load questions: " + msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.list = msg.Questions
		return s, nil

	case questionSubmittedMsg:
		return s.handleSubmitted(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.editing && !s.submitting {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.submitting {
		return s, nil
	}
	key := msg.String()

	if s.editing {
		switch key {
		case "esc":
			s.editing = false
			s.editor.Reset()
			return s, nil
		case "ctrl+s":
			return s.submit()
		}
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "a":
		s.editing = true
		s.status = ""
		return s, s.editor.Focus()
	case "r":
		s.status = ""
		return s, s.load()
	}
	return s, nil
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(s.editor.Value())
	if text == "" {
		s.errMsg = "Question cannot be empty."
		return s, nil
	}
	s.errMsg = ""
	s.submitting = true

	client := s.client
	in := api.QuestionInput{
		QuestionText: text,
		ExpertID:     s.profile.ID,
		SessionID:    s.assignment.Session,
	}
	return s, func() tea.Msg {
		q, err := client.SubmitQuestion(context.Background(), in)
		return questionSubmittedMsg{Question: q, Err: err}
	}
}

func (s *Screen) handleSubmitted(msg questionSubmittedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		// Keep the editor text so the expert can retry.
		s.errMsg = "Submission failed: " + msg.Err.Error()
		return s, nil
	}
	s.editing = false
	s.editor.Reset()
	s.list = append(s.list, *msg.Question)
	s.status = "Question submitted. Relevance is scored by the backend shortly."
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	heading := "Session " + s.assignment.Session
	if s.interview != nil {
		heading = s.interview.JobRole + "  " + formatTime(s.interview.Time)
	}
	b.WriteString(theme.Body.Bold(true).Render(heading))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("Loading..."))
	case s.editing:
		b.WriteString(theme.Body.Render("New question"))
		b.WriteString("\n")
		b.WriteString(s.editor.View())
		b.WriteString("\n")
		if s.submitting {
			b.WriteString(theme.Hint.Render("Submitting..."))
		}
	default:
		if len(s.list) == 0 {
			b.WriteString(theme.Hint.Render("No questions yet. Press A to add the first one."))
			b.WriteString("\n")
		}
		for i, q := range s.list {
			b.WriteString(renderQuestion(i+1, q))
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Bad.Render(s.errMsg))
	}
	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Good.Render(s.status))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderQuestion(n int, q api.Question) string {
	relevance := theme.Hint.Render("relevance pending")
	if q.RelevanceScore != nil {
		relevance = theme.ScoreStyle(*q.RelevanceScore).Render(fmt.Sprintf("relevance %d", *q.RelevanceScore))
	}
	text := q.QuestionText
	if len(text) > 64 {
		text = text[:61] + "..."
	}
	return theme.Unselected.Render(fmt.Sprintf("%2d. %s  ", n, text)) + relevance
}

func formatTime(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("Mon 02 Jan 15:04")
}
