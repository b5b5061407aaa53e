package evaluate

import (
	"context"
	"testing"

	"github.com/talentmatch/talentmatch/internal/interview"
	"github.com/talentmatch/talentmatch/internal/store"
)

type recordingRepo struct {
	store.EventRepo
	evals []store.EvaluationEventData
}

func (r *recordingRepo) AppendEvaluation(_ context.Context, data store.EvaluationEventData) error {
	r.evals = append(r.evals, data)
	return nil
}

func TestLoggingEvaluator_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	e := WithLogging(NewMockEvaluator(
		MockResult{Result: &Result{Score: 85, Feedback: "good"}},
	), repo)

	res, err := e.Evaluate(context.Background(), Input{
		Question: interview.Question{ID: "q1", Text: "?"},
		Answer:   "a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 85 {
		t.Errorf("score = %d", res.Score)
	}

	if len(repo.evals) != 1 {
		t.Fatalf("recorded %d events, want 1", len(repo.evals))
	}
	got := repo.evals[0]
	if got.Evaluator != "mock" || got.QuestionID != "q1" || got.Score != 85 || !got.Success {
		t.Errorf("event = %+v", got)
	}
}

func TestLoggingEvaluator_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	e := WithLogging(NewMockEvaluator(), repo) // empty queue errors

	_, err := e.Evaluate(context.Background(), Input{
		Question: interview.Question{ID: "q1", Text: "?"},
		Answer:   "a",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.evals) != 1 {
		t.Fatalf("recorded %d events, want 1", len(repo.evals))
	}
	got := repo.evals[0]
	if got.Success || got.ErrorMessage == "" {
		t.Errorf("event = %+v", got)
	}
}
