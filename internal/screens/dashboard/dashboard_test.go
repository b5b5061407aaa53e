package dashboard

import (
	"testing"
	"time"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/evaluate"
	"github.com/talentmatch/talentmatch/internal/identity"
	"github.com/talentmatch/talentmatch/internal/router"
	"github.com/talentmatch/talentmatch/internal/screens/interview"
)

func candidateScreen() *Screen {
	profile := identity.Profile{ID: "cand-1", Name: "Asha", Role: identity.RoleCandidate, JobRole: "Software Engineer"}
	return New(api.NewClient("http://127.0.0.1:0"), profile, evaluate.NewMockEvaluator(), nil)
}

func TestDashboard_PastDueUnscoredIsStartable(t *testing.T) {
	s := candidateScreen()
	score := 82
	scr, _ := s.Update(interviewsLoadedMsg{Interviews: []api.Interview{
		{ID: "int-due", JobRole: "Software Engineer", Time: time.Now().Add(-2 * time.Hour).Format(time.RFC3339)},
		{ID: "int-later", JobRole: "Software Engineer", Time: time.Now().Add(2 * time.Hour).Format(time.RFC3339)},
		{ID: "int-done", JobRole: "Software Engineer", Time: time.Now().Add(-24 * time.Hour).Format(time.RFC3339), Score: &score},
	}})
	s = scr.(*Screen)

	// A candidate returning at the booked time must still be able to
	// start; only a scored interview counts as completed.
	if len(s.upcoming) != 2 {
		t.Fatalf("startable interviews = %d, want 2", len(s.upcoming))
	}
	if s.upcoming[0].ID != "int-due" {
		t.Errorf("first startable = %q, want the past-due one", s.upcoming[0].ID)
	}
	if len(s.past) != 1 || s.past[0].ID != "int-done" {
		t.Fatal("completed list should hold only the scored interview")
	}

	_, cmd := s.open()
	if cmd == nil {
		t.Fatal("expected a command opening the selected interview")
	}
	msg := cmd()
	pushMsg, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := pushMsg.Screen.(*interview.Screen); !ok {
		t.Errorf("expected the interview wizard, got %T", pushMsg.Screen)
	}
}
