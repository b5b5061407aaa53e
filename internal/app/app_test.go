package app

import (
	"testing"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/evaluate"
	"github.com/talentmatch/talentmatch/internal/identity"
	"github.com/talentmatch/talentmatch/internal/screens/dashboard"
	"github.com/talentmatch/talentmatch/internal/screens/welcome"
)

func TestDashboardFor_RebuildsEvaluator(t *testing.T) {
	var gotIDs []string
	opts := Options{
		Client: api.NewClient("http://127.0.0.1:0"),
		NewEvaluator: func(candidateID string) evaluate.Evaluator {
			gotIDs = append(gotIDs, candidateID)
			return evaluate.NewMockEvaluator()
		},
	}
	m := newAppModel(opts)

	if len(gotIDs) != 0 {
		t.Fatalf("evaluators built before login = %d, want 0", len(gotIDs))
	}
	if _, ok := m.router.Active().(*welcome.Screen); !ok {
		t.Fatalf("start screen = %T, want the registration wizard", m.router.Active())
	}

	// Registration completes inside the TUI; the dashboard must get an
	// evaluator built with the fresh candidate ID.
	scr := m.dashboardFor(identity.Profile{ID: "cand-42", Role: identity.RoleCandidate, Name: "Asha"})
	if _, ok := scr.(*dashboard.Screen); !ok {
		t.Fatalf("got %T, want the dashboard", scr)
	}
	if len(gotIDs) != 1 || gotIDs[0] != "cand-42" {
		t.Fatalf("evaluator candidate IDs = %v, want [cand-42]", gotIDs)
	}
	if m.profile == nil || m.profile.ID != "cand-42" {
		t.Error("profile not updated after registration")
	}

	// Experts submit no answers of their own.
	m.dashboardFor(identity.Profile{ID: "exp-1", Role: identity.RoleExpert})
	if got := gotIDs[len(gotIDs)-1]; got != "" {
		t.Errorf("expert evaluator candidate ID = %q, want empty", got)
	}
}
