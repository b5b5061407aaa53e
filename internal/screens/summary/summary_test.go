package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	iv "github.com/talentmatch/talentmatch/internal/interview"
	"github.com/talentmatch/talentmatch/internal/router"
)

func testSession() *iv.Session {
	s := iv.NewSession("sess-1", "Software Engineer", []iv.Question{
		{ID: "q1", Text: "Tell me about yourself."},
		{ID: "q2", Text: "Describe a hard bug you fixed."},
		{ID: "q3", Text: "How do you handle deadlines?"},
	}, 30*time.Minute)
	_ = s.Start()
	_ = s.RecordAnswer(iv.Answer{QuestionID: "q1", Text: "a", Score: 90, Feedback: "Excellent answer!"})
	_ = s.RecordAnswer(iv.Answer{QuestionID: "q2", Text: "b", Score: 70, Feedback: "Average answer!"})
	s.Complete()
	return s
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSession(), "practice", nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSession(), "practice", nil)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	// 90 and 70 average to 80.
	if !strings.Contains(view, "80") {
		t.Error("expected the final score in the view")
	}
	if !strings.Contains(view, "Answered: 2 of 3") {
		t.Error("expected the answered count in the view")
	}
}

func TestSummaryScreen_BackendScoreWins(t *testing.T) {
	backendScore := 73
	s := New(testSession(), "scheduled", &backendScore)
	view := s.View(80, 24)
	if !strings.Contains(view, "Final score: 73") {
		t.Error("expected the backend score to be displayed")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	s := New(testSession(), "practice", nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on enter")
	}
}
