package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/evaluate"
	"github.com/talentmatch/talentmatch/internal/identity"
	"github.com/talentmatch/talentmatch/internal/router"
	"github.com/talentmatch/talentmatch/internal/screen"
	"github.com/talentmatch/talentmatch/internal/screens/dashboard"
	"github.com/talentmatch/talentmatch/internal/screens/welcome"
	"github.com/talentmatch/talentmatch/internal/store"
	"github.com/talentmatch/talentmatch/internal/ui/layout"
)

// Options wires the application's collaborators into the TUI.
type Options struct {
	Client      *api.Client
	Profile     *identity.Profile // nil when not logged in
	ProfilePath string
	Evaluator   evaluate.Evaluator
	EventRepo   store.EventRepo // nil disables local history

	// NewEvaluator rebuilds the evaluator for a given candidate ID.
	// Registration happens inside the TUI, so the evaluator built at
	// startup does not know the new candidate yet.
	NewEvaluator func(candidateID string) evaluate.Evaluator

	// Start is pushed on top of the landing screen when set, so the
	// practice command can jump straight into a run.
	Start screen.Screen
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts    Options
	router  *router.Router
	profile *identity.Profile
	overlay screen.Screen
	width   int
	height  int
}

func newAppModel(opts Options) *AppModel {
	m := &AppModel{opts: opts, profile: opts.Profile}

	var start screen.Screen
	if opts.Profile != nil {
		start = m.dashboardFor(*opts.Profile)
	} else {
		start = welcome.New(opts.Client, opts.ProfilePath, m.dashboardFor)
	}

	m.router = router.New(start)
	m.overlay = opts.Start
	return m
}

// dashboardFor builds the landing dashboard for a profile, rebuilding
// the evaluator so remote scoring carries that profile's candidate ID.
func (m *AppModel) dashboardFor(p identity.Profile) screen.Screen {
	m.profile = &p

	evaluator := m.opts.Evaluator
	if m.opts.NewEvaluator != nil {
		candidateID := ""
		if p.Role == identity.RoleCandidate {
			candidateID = p.ID
		}
		evaluator = m.opts.NewEvaluator(candidateID)
	}

	return dashboard.New(m.opts.Client, p, evaluator, m.opts.EventRepo)
}

func (m *AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.overlay != nil {
		return tea.Batch(cmd, m.router.Push(m.overlay))
	}
	return cmd
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Screens own every other key, including esc. Forms treat it as
	// cancel and the interview wizard as a quit confirmation.
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	who := ""
	if m.profile != nil {
		who = m.profile.Name + " · " + string(m.profile.Role)
	}
	header := layout.RenderHeader(title, who, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
