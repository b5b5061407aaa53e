package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryInterviewEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	runs := []InterviewEventData{
		{SessionID: "s1", Action: "start", Mode: "practice", JobRole: "DSP Engineer", QuestionCount: 5},
		{SessionID: "s1", Action: "complete", Mode: "practice", JobRole: "DSP Engineer", QuestionCount: 5, AnsweredCount: 5, FinalScore: 82, DurationSecs: 640},
		{SessionID: "s2", Action: "start", Mode: "scheduled", InterviewID: "iv-9", QuestionCount: 3},
	}
	for _, d := range runs {
		if err := repo.AppendInterviewEvent(ctx, d); err != nil {
			t.Fatalf("append %+v: %v", d, err)
		}
	}

	got, err := repo.QueryInterviewEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}

	// Newest first.
	if got[0].SessionID != "s2" || got[2].Action != "start" || got[2].SessionID != "s1" {
		t.Errorf("unexpected order: %+v", got)
	}
	if got[1].FinalScore != 82 || got[1].AnsweredCount != 5 {
		t.Errorf("complete event not preserved: %+v", got[1])
	}

	// Sequences strictly decrease in newest-first order.
	for i := 1; i < len(got); i++ {
		if got[i].Sequence >= got[i-1].Sequence {
			t.Errorf("sequence not monotonic: %d then %d", got[i-1].Sequence, got[i].Sequence)
		}
	}

	limited, err := repo.QueryInterviewEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "s2" {
		t.Errorf("limit query: %+v", limited)
	}
}

func TestAppendAndQueryAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", QuestionID: "q1", QuestionText: "What is WAL?", AnswerText: "a log", Score: 70, Feedback: "ok", TimeMs: 4000, Evaluator: "local"},
		{SessionID: "s1", QuestionID: "q2", QuestionText: "What is DMA?", AnswerText: "dma", Score: 90, Evaluator: "local"},
		{SessionID: "s2", QuestionID: "q1", QuestionText: "What is WAL?", AnswerText: "better", Score: 95, Evaluator: "remote"},
	}
	for _, d := range answers {
		if err := repo.AppendAnswerEvent(ctx, d); err != nil {
			t.Fatalf("append %+v: %v", d, err)
		}
	}

	got, err := repo.AnswersBySession(ctx, "s1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d answers, want 2", len(got))
	}
	// Recorded order.
	if got[0].QuestionID != "q1" || got[1].QuestionID != "q2" {
		t.Errorf("unexpected order: %+v", got)
	}
	if got[0].Score != 70 || got[0].Feedback != "ok" || got[0].TimeMs != 4000 {
		t.Errorf("answer fields not preserved: %+v", got[0])
	}

	empty, err := repo.AnswersBySession(ctx, "missing")
	if err != nil {
		t.Fatalf("query missing session: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no answers, got %d", len(empty))
	}
}

func TestEvaluationStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []EvaluationEventData{
		{Evaluator: "openai", QuestionID: "q1", Score: 80, Success: true, LatencyMs: 900},
		{Evaluator: "openai", QuestionID: "q2", Score: 60, Success: true, LatencyMs: 700},
		{Evaluator: "openai", QuestionID: "q3", Success: false, ErrorMessage: "rate limited"},
		{Evaluator: "local", QuestionID: "q1", Score: 75, Success: true},
	}
	for _, d := range calls {
		if err := repo.AppendEvaluation(ctx, d); err != nil {
			t.Fatalf("append %+v: %v", d, err)
		}
	}

	stats, err := repo.EvaluationStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d evaluators, want 2", len(stats))
	}

	// Sorted by evaluator name.
	if stats[0].Evaluator != "local" || stats[1].Evaluator != "openai" {
		t.Fatalf("unexpected order: %+v", stats)
	}
	oa := stats[1]
	if oa.Calls != 3 || oa.Failures != 1 {
		t.Errorf("openai stats: %+v", oa)
	}
	if oa.AvgScore != 70 {
		t.Errorf("openai avg = %v, want 70", oa.AvgScore)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendInterviewEvent(ctx, InterviewEventData{SessionID: "s1", Action: "start", Mode: "practice"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", QuestionID: "q1", QuestionText: "?", AnswerText: "a", Score: 70, Evaluator: "local"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendInterviewEvent(ctx, InterviewEventData{SessionID: "s1", Action: "complete", Mode: "practice"}); err != nil {
		t.Fatal(err)
	}

	runs, err := repo.QueryInterviewEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	answers, err := repo.AnswersBySession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}

	// The answer's sequence falls strictly between start and complete.
	start, complete := runs[1].Sequence, runs[0].Sequence
	if !(start < answers[0].Sequence && answers[0].Sequence < complete) {
		t.Errorf("sequence not interleaved: start=%d answer=%d complete=%d",
			start, answers[0].Sequence, complete)
	}
}
