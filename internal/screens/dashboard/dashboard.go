package dashboard

import (
	"context"
	"sort"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/evaluate"
	"github.com/talentmatch/talentmatch/internal/identity"
	"github.com/talentmatch/talentmatch/internal/router"
	"github.com/talentmatch/talentmatch/internal/screen"
	"github.com/talentmatch/talentmatch/internal/screens/history"
	"github.com/talentmatch/talentmatch/internal/screens/interview"
	"github.com/talentmatch/talentmatch/internal/screens/questions"
	"github.com/talentmatch/talentmatch/internal/store"
	"github.com/talentmatch/talentmatch/internal/ui/layout"
)

// assignmentRow pairs an expert assignment with its resolved interview.
// Interview is nil while the lookup is pending or failed.
type assignmentRow struct {
	Assignment api.Assignment
	Interview  *api.Interview
}

type interviewsLoadedMsg struct {
	Interviews []api.Interview
	Err        error
}

type assignmentsLoadedMsg struct {
	Rows []assignmentRow
	Err  error
}

type bookedMsg struct {
	Interview *api.Interview
	Err       error
}

// Screen is the landing page after login. Candidates see their booked
// interviews and a booking form; experts see their assigned sessions.
type Screen struct {
	client    *api.Client
	profile   identity.Profile
	evaluator evaluate.Evaluator
	eventRepo store.EventRepo

	loading  bool
	upcoming []api.Interview
	past     []api.Interview
	rows     []assignmentRow
	cursor   int

	booking bookingForm
	status  string
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the dashboard for the logged-in profile.
func New(client *api.Client, profile identity.Profile, evaluator evaluate.Evaluator, eventRepo store.EventRepo) *Screen {
	return &Screen{
		client:    client,
		profile:   profile,
		evaluator: evaluator,
		eventRepo: eventRepo,
		loading:   true,
	}
}

func (s *Screen) Title() string {
	if s.profile.Role == identity.RoleExpert {
		return "Assignments"
	}
	return "Dashboard"
}

func (s *Screen) Init() tea.Cmd {
	return s.refresh()
}

// refresh reloads the role-appropriate listing from the backend.
func (s *Screen) refresh() tea.Cmd {
	s.loading = true
	client, profile := s.client, s.profile

	if profile.Role == identity.RoleExpert {
		return func() tea.Msg {
			ctx := context.Background()
			assignments, err := client.AssignmentsByExpert(ctx, profile.ID)
			if err != nil {
				return assignmentsLoadedMsg{Err: err}
			}
			rows := make([]assignmentRow, len(assignments))
			for i, a := range assignments {
				rows[i] = assignmentRow{Assignment: a}
				// Best effort; a row without details is still usable.
				if iv, err := client.Interview(ctx, a.Session); err == nil {
					rows[i].Interview = iv
				}
			}
			sort.SliceStable(rows, func(i, j int) bool {
				return rows[i].Assignment.Priority > rows[j].Assignment.Priority
			})
			return assignmentsLoadedMsg{Rows: rows}
		}
	}

	return func() tea.Msg {
		interviews, err := client.InterviewsByCandidate(context.Background(), profile.ID)
		if err != nil {
			return interviewsLoadedMsg{Err: err}
		}
		return interviewsLoadedMsg{Interviews: interviews}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case interviewsLoadedMsg:
		return s.handleInterviewsLoaded(msg)

	case assignmentsLoadedMsg:
		return s.handleAssignmentsLoaded(msg)

	case bookedMsg:
		return s.handleBooked(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.booking.active {
		var cmd tea.Cmd
		s.booking, cmd = s.booking.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleInterviewsLoaded(msg interviewsLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.errMsg = "Could not load interviews: " + msg.Err.Error()
		return s, nil
	}
	s.errMsg = ""

	// Split on score: an unscored interview stays startable even past
	// its slot, since candidates are told to come back at the booked
	// time. The start gate holds back the ones that are still early.
	s.upcoming = s.upcoming[:0]
	s.past = s.past[:0]
	for _, iv := range msg.Interviews {
		if iv.Score != nil {
			s.past = append(s.past, iv)
		} else {
			s.upcoming = append(s.upcoming, iv)
		}
	}
	sort.SliceStable(s.upcoming, func(i, j int) bool {
		return s.upcoming[i].Time < s.upcoming[j].Time
	})
	sort.SliceStable(s.past, func(i, j int) bool {
		return s.past[i].Time > s.past[j].Time
	})
	s.clampCursor()
	return s, nil
}

func (s *Screen) handleAssignmentsLoaded(msg assignmentsLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.errMsg = "Could not load assignments: " + msg.Err.Error()
		return s, nil
	}
	s.errMsg = ""
	s.rows = msg.Rows
	s.clampCursor()
	return s, nil
}

func (s *Screen) handleBooked(msg bookedMsg) (screen.Screen, tea.Cmd) {
	s.booking.submitting = false
	if msg.Err != nil {
		// Keep the form populated so the user can correct and retry.
		s.booking.errMsg = "Booking failed: " + msg.Err.Error()
		return s, nil
	}
	s.booking = bookingForm{}
	s.status = "Interview booked for " + formatTime(msg.Interview.Time) + "."
	return s, s.refresh()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.booking.active {
		form, cmd, submitted := s.booking.HandleKey(msg)
		s.booking = form
		if submitted {
			return s.book()
		}
		return s, cmd
	}

	s.status = ""
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.listLen()-1 {
			s.cursor++
		}
	case "r":
		return s, s.refresh()
	case "enter":
		return s.open()
	case "p":
		if s.profile.Role == identity.RoleCandidate {
			return s, push(interview.NewPractice(s.evaluator, s.eventRepo, s.profile.JobRole))
		}
	case "b":
		if s.profile.Role == identity.RoleCandidate {
			s.booking = newBookingForm(s.profile.JobRole)
			return s, s.booking.Init()
		}
	case "h":
		if s.eventRepo != nil {
			return s, push(history.New(s.eventRepo))
		}
	}
	return s, nil
}

func (s *Screen) listLen() int {
	if s.profile.Role == identity.RoleExpert {
		return len(s.rows)
	}
	return len(s.upcoming)
}

func (s *Screen) clampCursor() {
	if n := s.listLen(); s.cursor >= n {
		s.cursor = max(n-1, 0)
	}
}

// open starts the selected upcoming interview (candidate) or opens the
// question editor for the selected assignment (expert).
func (s *Screen) open() (screen.Screen, tea.Cmd) {
	if s.profile.Role == identity.RoleExpert {
		if s.cursor >= len(s.rows) {
			return s, nil
		}
		row := s.rows[s.cursor]
		return s, push(questions.New(s.client, s.profile, row.Assignment, row.Interview))
	}

	if s.cursor >= len(s.upcoming) {
		return s, nil
	}
	booked := s.upcoming[s.cursor]
	return s, push(interview.NewScheduled(s.client, s.evaluator, s.eventRepo, booked))
}

func (s *Screen) book() (screen.Screen, tea.Cmd) {
	in, err := s.booking.Input(s.profile.ID)
	if err != nil {
		s.booking.errMsg = err.Error()
		s.booking.submitting = false
		return s, nil
	}

	client := s.client
	return s, func() tea.Msg {
		iv, err := client.CreateInterview(context.Background(), in)
		return bookedMsg{Interview: iv, Err: err}
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.booking.active {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Book"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.profile.Role == identity.RoleExpert {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Select"},
			{Key: "Enter", Description: "Manage questions"},
			{Key: "R", Description: "Refresh"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start interview"},
		{Key: "B", Description: "Book"},
		{Key: "P", Description: "Practice"},
		{Key: "H", Description: "History"},
	}
}

func push(next screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func formatTime(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("Mon 02 Jan 2006 15:04")
}
