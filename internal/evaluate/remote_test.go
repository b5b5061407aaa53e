package evaluate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/interview"
)

func TestRemoteEvaluator_ScoredAnswer(t *testing.T) {
	var got api.AnswerInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/answers/submit" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		score := 88
		json.NewEncoder(w).Encode(api.Answer{
			ID:         "ans-1",
			QuestionID: got.QuestionID,
			AnswerText: got.AnswerText,
			Score:      &score,
			Feedback:   "Strong answer.",
		})
	}))
	defer srv.Close()

	e := NewRemoteEvaluator(api.NewClient(srv.URL), "cand-7")
	res, err := e.Evaluate(context.Background(), Input{
		Question: interview.Question{ID: "q-3", Text: "Explain WAL."},
		Answer:   "Write-ahead logging persists intent before data pages.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.CandidateID != "cand-7" || got.QuestionID != "q-3" {
		t.Errorf("submitted %+v", got)
	}
	if res.Score != 88 || res.Feedback != "Strong answer." {
		t.Errorf("result = %+v", res)
	}
}

func TestRemoteEvaluator_PendingScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Answer{ID: "ans-2", QuestionID: "q-1"})
	}))
	defer srv.Close()

	e := NewRemoteEvaluator(api.NewClient(srv.URL), "cand-7")
	res, err := e.Evaluate(context.Background(), Input{
		Question: interview.Question{ID: "q-1", Text: "?"},
		Answer:   "a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("score = %d, want 0 for pending evaluation", res.Score)
	}
	if res.Feedback != "Answer recorded. Evaluation pending." {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestRemoteEvaluator_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	e := NewRemoteEvaluator(api.NewClient(srv.URL), "cand-7")
	_, err := e.Evaluate(context.Background(), Input{
		Question: interview.Question{ID: "q-1", Text: "?"},
		Answer:   "a",
	})
	if err == nil {
		t.Fatal("expected error from failing backend")
	}
}
