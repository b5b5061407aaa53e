package welcome

import (
	"context"
	"strings"

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

type step int

const (
	stepRole step = iota
	stepForm
)

type registeredMsg struct {
	Profile identity.Profile
	Err     error
}

// Screen is the first-run registration wizard: pick a role, fill in
// the profile fields, register with the backend and persist the
// returned identity locally.
type Screen struct {
	client      *api.Client
	profilePath string
	nextFactory func(identity.Profile) screen.Screen

	step       step
	roleMenu   components.Menu
	role       identity.Role
	fields     []components.TextInput
	labels     []string
	focused    int
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the registration wizard. nextFactory produces the screen
// shown once registration succeeds.
func New(client *api.Client, profilePath string, nextFactory func(identity.Profile) screen.Screen) *Screen {
	return &Screen{
		client:      client,
		profilePath: profilePath,
		nextFactory: nextFactory,
		roleMenu: components.NewMenu([]components.MenuItem{
			{Label: "Candidate"},
			{Label: "Expert"},
		}),
	}
}

func (s *Screen) Title() string {
	return "Welcome"
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.step == stepRole {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Choose role"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Register"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registeredMsg:
		return s.handleRegistered(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.step == stepForm && !s.submitting {
		var cmd tea.Cmd
		s.fields[s.focused], cmd = s.fields[s.focused].Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.submitting {
		return s, nil
	}
	key := msg.String()

	if s.step == stepRole {
		if key == "enter" {
			return s.chooseRole()
		}
		s.roleMenu, _ = s.roleMenu.Update(msg)
		return s, nil
	}

	switch key {
	case "esc":
		s.step = stepRole
		s.errMsg = ""
		return s, nil
	case "tab", "down":
		return s, s.focusField((s.focused + 1) % len(s.fields))
	case "shift+tab", "up":
		return s, s.focusField((s.focused + len(s.fields) - 1) % len(s.fields))
	case "enter":
		if s.focused < len(s.fields)-1 {
			return s, s.focusField(s.focused + 1)
		}
		return s.submit()
	}

	var cmd tea.Cmd
	s.fields[s.focused], cmd = s.fields[s.focused].Update(msg)
	return s, cmd
}

func (s *Screen) chooseRole() (screen.Screen, tea.Cmd) {
	switch s.roleMenu.Selected {
	case 0:
		s.role = identity.RoleCandidate
		s.labels = []string{"Full name", "Job role applying for"}
		s.fields = []components.TextInput{
			components.NewTextInput("e.g. Priya Sharma", false, 60),
			components.NewTextInput("e.g. Software Engineer", false, 60),
		}
	case 1:
		s.role = identity.RoleExpert
		s.labels = []string{"Full name", "Area of expertise", "Seniority (years)"}
		s.fields = []components.TextInput{
			components.NewTextInput("e.g. Dr. Anil Rao", false, 60),
			components.NewTextInput("e.g. Distributed Systems", false, 60),
			components.NewTextInput("e.g. 12", true, 2),
		}
	}
	s.step = stepForm
	s.focused = 0
	return s, s.fields[0].Focus()
}

func (s *Screen) focusField(i int) tea.Cmd {
	s.fields[s.focused].Blur()
	s.focused = i
	return s.fields[i].Focus()
}

// submit validates the form and registers with the backend.
func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	firstEmpty := -1
	for i := range s.fields {
		valid := strings.TrimSpace(s.fields[i].Value()) != ""
		s.fields[i].Submit(valid)
		if !valid && firstEmpty < 0 {
			firstEmpty = i
		}
	}
	if firstEmpty >= 0 {
		s.errMsg = s.labels[firstEmpty] + " is required."
		return s, s.focusField(firstEmpty)
	}
	s.errMsg = ""
	s.submitting = true

	client, role := s.client, s.role
	name := strings.TrimSpace(s.fields[0].Value())
	second := strings.TrimSpace(s.fields[1].Value())
	seniority := 0
	if role == identity.RoleExpert {
		seniority, _ = s.fields[2].NumericValue()
	}

	return s, func() tea.Msg {
		ctx := context.Background()
		if role == identity.RoleCandidate {
			p, err := client.CreateCandidate(ctx, api.CandidateInput{
				Name:       name,
				JobRole:    second,
				Education:  []api.Education{},
				Experience: []api.Experience{},
			})
			if err != nil {
				return registeredMsg{Err: err}
			}
			return registeredMsg{Profile: identity.Profile{
				Role:    identity.RoleCandidate,
				ID:      p.ID,
				Name:    name,
				JobRole: second,
			}}
		}
		p, err := client.CreateExpert(ctx, api.ExpertInput{
			Name:      name,
			Expertise: second,
			Seniority: seniority,
		})
		if err != nil {
			return registeredMsg{Err: err}
		}
		return registeredMsg{Profile: identity.Profile{
			Role:      identity.RoleExpert,
			ID:        p.ID,
			Name:      name,
			Expertise: second,
			Seniority: seniority,
		}}
	}
}

func (s *Screen) handleRegistered(msg registeredMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		s.errMsg = "Registration failed: " + msg.Err.Error()
		return s, nil
	}

	if err := identity.Save(s.profilePath, &msg.Profile); err != nil {
		s.errMsg = "Could not save profile: " + err.Error()
		return s, nil
	}

	next := s.nextFactory(msg.Profile)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Welcome to TalentMatch"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Interview scheduling and assessment"))
	b.WriteString("\n\n")

	if s.step == stepRole {
		b.WriteString(theme.Body.Render("How will you use TalentMatch?"))
		b.WriteString("\n\n")
		b.WriteString(s.roleMenu.View())
	} else {
		heading := "Register as a candidate"
		if s.role == identity.RoleExpert {
			heading = "Register as an expert"
		}
		b.WriteString(theme.Body.Bold(true).Render(heading))
		b.WriteString("\n\n")

		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		for i := range s.fields {
			b.WriteString(labelStyle.Render(s.labels[i]))
			b.WriteString("\n")
			b.WriteString(s.fields[i].View())
			b.WriteString("\n\n")
		}

		if s.submitting {
			b.WriteString(theme.Hint.Render("Registering..."))
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Bad.Render(s.errMsg))
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
