package dashboard

import (
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/ui/components"
)

// bookingForm is the inline form for booking a new interview.
type bookingForm struct {
	active     bool
	fields     []components.TextInput
	labels     []string
	focused    int
	submitting bool
	errMsg     string
}

func newBookingForm(jobRole string) bookingForm {
	role := components.NewTextInput("e.g. Software Engineer", false, 60)
	role.Model.SetValue(jobRole)
	return bookingForm{
		active: true,
		labels: []string{"Job role", "Date (YYYY-MM-DD)", "Time (HH:MM)"},
		fields: []components.TextInput{
			role,
			components.NewTextInput(time.Now().AddDate(0, 0, 1).Format("2006-01-02"), false, 10),
			components.NewTextInput("10:00", false, 5),
		},
	}
}

func (f bookingForm) Init() tea.Cmd {
	return f.fields[0].Focus()
}

func (f bookingForm) Update(msg tea.Msg) (bookingForm, tea.Cmd) {
	var cmd tea.Cmd
	f.fields[f.focused], cmd = f.fields[f.focused].Update(msg)
	return f, cmd
}

// HandleKey processes a key press. The third return is true when the
// form was submitted and the caller should fire the booking call.
func (f bookingForm) HandleKey(msg tea.KeyMsg) (bookingForm, tea.Cmd, bool) {
	if f.submitting {
		return f, nil, false
	}

	switch msg.String() {
	case "esc":
		f.active = false
		return f, nil, false
	case "tab", "down":
		f, cmd := f.focus((f.focused + 1) % len(f.fields))
		return f, cmd, false
	case "shift+tab", "up":
		f, cmd := f.focus((f.focused + len(f.fields) - 1) % len(f.fields))
		return f, cmd, false
	case "enter":
		if f.focused < len(f.fields)-1 {
			f, cmd := f.focus(f.focused + 1)
			return f, cmd, false
		}
		f.submitting = true
		f.errMsg = ""
		return f, nil, true
	}

	var cmd tea.Cmd
	f.fields[f.focused], cmd = f.fields[f.focused].Update(msg)
	return f, cmd, false
}

func (f bookingForm) focus(i int) (bookingForm, tea.Cmd) {
	f.fields[f.focused].Blur()
	f.focused = i
	return f, f.fields[i].Focus()
}

// Input validates the form and builds the booking payload.
func (f bookingForm) Input(candidateID string) (api.InterviewInput, error) {
	jobRole := strings.TrimSpace(f.fields[0].Value())
	if jobRole == "" {
		return api.InterviewInput{}, errors.New("Job role is required.")
	}

	date := strings.TrimSpace(f.fields[1].Value())
	clock := strings.TrimSpace(f.fields[2].Value())
	when, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return api.InterviewInput{}, errors.New("Enter the date as YYYY-MM-DD and the time as HH:MM.")
	}
	if when.Before(time.Now()) {
		return api.InterviewInput{}, errors.New("The interview time must be in the future.")
	}

	return api.InterviewInput{
		CandidateID: candidateID,
		JobRole:     jobRole,
		Time:        when.Format(time.RFC3339),
	}, nil
}
