package welcome

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/identity"
	"github.com/talentmatch/talentmatch/internal/router"
	"github.com/talentmatch/talentmatch/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "dashboard" }
func (s *stubScreen) Title() string                           { return "Dashboard" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestWelcome(t *testing.T, backend http.Handler) (*Screen, *identity.Profile) {
	t.Helper()

	var captured identity.Profile
	factory := func(p identity.Profile) screen.Screen {
		captured = p
		return &stubScreen{}
	}

	baseURL := ""
	if backend != nil {
		srv := httptest.NewServer(backend)
		t.Cleanup(srv.Close)
		baseURL = srv.URL
	}

	client := api.NewClient(baseURL)
	path := filepath.Join(t.TempDir(), "profile.json")
	return New(client, path, factory), &captured
}

func selectRole(t *testing.T, s *Screen, downPresses int) *Screen {
	t.Helper()
	var scr screen.Screen = s
	for i := 0; i < downPresses; i++ {
		scr, _ = scr.Update(keyPress('j'))
	}
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	out := scr.(*Screen)
	if out.step != stepForm {
		t.Fatalf("step = %v, want form", out.step)
	}
	return out
}

func TestWelcome_CandidateForm(t *testing.T) {
	s, _ := newTestWelcome(t, nil)
	s = selectRole(t, s, 0)

	if s.role != identity.RoleCandidate {
		t.Errorf("role = %q, want candidate", s.role)
	}
	if len(s.fields) != 2 {
		t.Errorf("fields = %d, want 2", len(s.fields))
	}
}

func TestWelcome_ExpertForm(t *testing.T) {
	s, _ := newTestWelcome(t, nil)
	s = selectRole(t, s, 1)

	if s.role != identity.RoleExpert {
		t.Errorf("role = %q, want expert", s.role)
	}
	if len(s.fields) != 3 {
		t.Errorf("fields = %d, want 3", len(s.fields))
	}
}

func TestWelcome_RequiredFields(t *testing.T) {
	s, _ := newTestWelcome(t, nil)
	s = selectRole(t, s, 0)

	// Enter on the last empty field must not fire a request.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // advance to field 2
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	s = scr.(*Screen)

	if s.errMsg == "" {
		t.Error("expected a validation message for empty fields")
	}
	if s.submitting {
		t.Error("empty form must not submit")
	}
}

func TestWelcome_EscReturnsToRoleStep(t *testing.T) {
	s, _ := newTestWelcome(t, nil)
	s = selectRole(t, s, 0)

	scr, _ := s.Update(specialKey(tea.KeyEscape))
	s = scr.(*Screen)
	if s.step != stepRole {
		t.Errorf("step = %v, want role after esc", s.step)
	}
}

func TestWelcome_CandidateRegistration(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/candidates/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cand-42","name":"Priya","job_role":"SRE"}`))
	})
	s, captured := newTestWelcome(t, backend)
	s = selectRole(t, s, 0)

	s.fields[0].Model.SetValue("Priya")
	s.fields[1].Model.SetValue("SRE")

	// Enter on the first field advances, enter on the last submits.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	s = scr.(*Screen)
	if cmd == nil {
		t.Fatal("expected a registration command")
	}

	msg := cmd()
	registered, ok := msg.(registeredMsg)
	if !ok {
		t.Fatalf("expected registeredMsg, got %T", msg)
	}
	if registered.Err != nil {
		t.Fatalf("registration failed: %v", registered.Err)
	}

	scr, cmd = s.Update(registered)
	if cmd == nil {
		t.Fatal("expected a navigation command after registration")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the next screen")
	}
	if captured.ID != "cand-42" {
		t.Errorf("factory profile id = %q, want cand-42", captured.ID)
	}
	if captured.Role != identity.RoleCandidate {
		t.Errorf("factory profile role = %q, want candidate", captured.Role)
	}

	// The identity must be persisted for the next launch.
	saved, err := identity.Load(scr.(*Screen).profilePath)
	if err != nil {
		t.Fatalf("load saved profile: %v", err)
	}
	if saved.ID != "cand-42" {
		t.Errorf("saved profile id = %q, want cand-42", saved.ID)
	}
}

func TestWelcome_BackendFailureKeepsForm(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	s, _ := newTestWelcome(t, backend)
	s = selectRole(t, s, 0)

	s.fields[0].Model.SetValue("Priya")
	s.fields[1].Model.SetValue("SRE")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	s = scr.(*Screen)

	msg := cmd()
	scr, _ = s.Update(msg)
	s = scr.(*Screen)

	if s.errMsg == "" {
		t.Error("expected an error message after a backend failure")
	}
	if s.fields[0].Value() != "Priya" {
		t.Error("form must stay populated after a failure")
	}
}
