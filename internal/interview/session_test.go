package interview

import (
	"errors"
	"testing"
	"time"
)

func testQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:         string(rune('a' + i)),
			Text:       "question",
			Category:   "Technical",
			Difficulty: Medium,
		}
	}
	return qs
}

func startedSession(t *testing.T, n int) *Session {
	t.Helper()
	s := NewSession("s1", "Software Engineer", testQuestions(n), DefaultDuration)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func submit(t *testing.T, s *Session, text string, score int) {
	t.Helper()
	q, ok := s.CurrentQuestion()
	if !ok {
		t.Fatal("no current question")
	}
	err := s.RecordAnswer(Answer{QuestionID: q.ID, Text: text, Score: score})
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
}

func TestStart_OnlyFromNotStarted(t *testing.T) {
	s := startedSession(t, 3)
	firstStart := s.StartedAt

	err := s.Start()
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Start() error = %v, want ErrInvalidTransition", err)
	}
	if s.StartedAt != firstStart {
		t.Error("second Start() reset StartedAt")
	}

	s.Complete()
	if err := s.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Start() after completion error = %v, want ErrInvalidTransition", err)
	}
}

func TestStart_NoQuestions(t *testing.T) {
	s := NewSession("s1", "Software Engineer", nil, DefaultDuration)
	if err := s.Start(); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("Start() error = %v, want ErrNoQuestions", err)
	}
	if s.Status != StatusNotStarted {
		t.Errorf("Status = %v, want not_started", s.Status)
	}
}

func TestRecordAnswer_BeforeStart(t *testing.T) {
	s := NewSession("s1", "Software Engineer", testQuestions(3), DefaultDuration)
	err := s.RecordAnswer(Answer{Text: "answer"})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("error = %v, want ErrInvalidTransition", err)
	}
}

func TestRecordAnswer_EmptyRejected(t *testing.T) {
	s := startedSession(t, 3)

	for _, text := range []string{"", "   ", "\n\t "} {
		err := s.RecordAnswer(Answer{Text: text})
		if !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("RecordAnswer(%q) error = %v, want ErrEmptyAnswer", text, err)
		}
	}
	if len(s.Answers) != 0 {
		t.Errorf("len(Answers) = %d, want 0", len(s.Answers))
	}
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0 (empty answer must not advance)", s.Current)
	}
}

func TestRecordAnswer_AdvancesAndKeepsIndexInRange(t *testing.T) {
	s := startedSession(t, 3)

	for i := 0; i < 3; i++ {
		if s.Current < 0 || s.Current >= len(s.Questions) {
			t.Fatalf("Current = %d out of range [0,%d)", s.Current, len(s.Questions))
		}
		submit(t, s, "answer", 70)
	}

	if s.Status != StatusCompleted {
		t.Errorf("Status = %v, want completed", s.Status)
	}
	// The cursor parks on the last question after completion.
	if s.Current != len(s.Questions)-1 {
		t.Errorf("Current = %d, want %d", s.Current, len(s.Questions)-1)
	}
}

func TestFinalScore_FullRun(t *testing.T) {
	s := startedSession(t, 5)
	for _, score := range []int{90, 80, 70, 60, 100} {
		submit(t, s, "answer", score)
	}

	if s.Status != StatusCompleted {
		t.Fatalf("Status = %v, want completed", s.Status)
	}
	if s.FinalScore != 80 {
		t.Errorf("FinalScore = %d, want 80", s.FinalScore)
	}
	if s.EndedAt.IsZero() {
		t.Error("EndedAt not recorded")
	}
}

func TestFinalScore_TimerExpiryAveragesSubmittedOnly(t *testing.T) {
	s := NewSession("s1", "Software Engineer", testQuestions(5), 3*time.Second)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	submit(t, s, "answer", 90)
	submit(t, s, "answer", 70)

	expired := false
	for i := 0; i < 3; i++ {
		expired = s.Tick()
	}
	if !expired {
		t.Fatal("expected the final tick to force completion")
	}
	if s.Status != StatusCompleted {
		t.Fatalf("Status = %v, want completed", s.Status)
	}
	if s.FinalScore != 80 {
		t.Errorf("FinalScore = %d, want 80 (average over the 2 submitted answers)", s.FinalScore)
	}
	if len(s.Answers) != 2 {
		t.Errorf("len(Answers) = %d, want 2", len(s.Answers))
	}
}

func TestTick_NoEffectOutsideInProgress(t *testing.T) {
	s := NewSession("s1", "Software Engineer", testQuestions(2), DefaultDuration)
	if s.Tick() {
		t.Error("Tick() before start reported expiry")
	}
	if s.Remaining != DefaultDuration {
		t.Errorf("Remaining = %v, want untouched %v", s.Remaining, DefaultDuration)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Complete()
	remaining := s.Remaining
	if s.Tick() {
		t.Error("Tick() after completion reported expiry")
	}
	if s.Remaining != remaining {
		t.Error("Tick() after completion changed Remaining")
	}
}

func TestComplete_Idempotent(t *testing.T) {
	s := startedSession(t, 2)
	submit(t, s, "answer", 80)

	s.Complete()
	ended := s.EndedAt
	score := s.FinalScore

	s.Complete()
	if s.EndedAt != ended {
		t.Error("second Complete() changed EndedAt")
	}
	if s.FinalScore != score {
		t.Error("second Complete() changed FinalScore")
	}
}

func TestComplete_WithNoAnswers(t *testing.T) {
	s := startedSession(t, 2)
	s.Complete()
	if s.FinalScore != 0 {
		t.Errorf("FinalScore = %d, want 0", s.FinalScore)
	}
}

func TestLateAnswer_DiscardedAfterCompletion(t *testing.T) {
	s := startedSession(t, 3)
	submit(t, s, "answer", 90)
	s.Complete()

	err := s.RecordAnswer(Answer{QuestionID: "b", Text: "late", Score: 100})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("error = %v, want ErrInvalidTransition", err)
	}
	if len(s.Answers) != 1 {
		t.Errorf("len(Answers) = %d, want 1 (late result must be discarded)", len(s.Answers))
	}
	if s.FinalScore != 90 {
		t.Errorf("FinalScore = %d, want 90 (no double-counting)", s.FinalScore)
	}
}

func TestPrevious_NoopAtZero(t *testing.T) {
	s := startedSession(t, 3)
	if err := s.Previous(); err != nil {
		t.Fatalf("Previous() at index 0: %v", err)
	}
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0", s.Current)
	}
}

func TestPrevious_InvalidOutsideInProgress(t *testing.T) {
	s := NewSession("s1", "Software Engineer", testQuestions(3), DefaultDuration)
	if err := s.Previous(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Previous() before start error = %v, want ErrInvalidTransition", err)
	}
}

func TestPrevious_KeepsExistingAnswer(t *testing.T) {
	s := startedSession(t, 3)
	submit(t, s, "first take", 70)

	if err := s.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	if s.Current != 0 {
		t.Fatalf("Current = %d, want 0", s.Current)
	}
	a, ok := s.AnswerFor("a")
	if !ok {
		t.Fatal("answer for revisited question missing")
	}
	if a.Text != "first take" {
		t.Errorf("answer text = %q, want %q", a.Text, "first take")
	}
}

func TestResubmit_OverwritesByQuestionID(t *testing.T) {
	s := startedSession(t, 3)
	submit(t, s, "first take", 70)
	if err := s.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	submit(t, s, "second take", 95)

	if len(s.Answers) != 1 {
		t.Fatalf("len(Answers) = %d, want 1 (overwrite, not duplicate)", len(s.Answers))
	}
	a, _ := s.AnswerFor("a")
	if a.Text != "second take" || a.Score != 95 {
		t.Errorf("answer = %+v, want the re-submitted one", a)
	}
	if s.Current != 1 {
		t.Errorf("Current = %d, want 1", s.Current)
	}
}

func TestRecordAnswer_WrongQuestionRejected(t *testing.T) {
	s := startedSession(t, 3)
	err := s.RecordAnswer(Answer{QuestionID: "c", Text: "answer", Score: 80})
	if err == nil {
		t.Fatal("expected an error for an answer targeting a non-current question")
	}
	if len(s.Answers) != 0 {
		t.Errorf("len(Answers) = %d, want 0", len(s.Answers))
	}
}

func TestAverageScore_Rounding(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"empty", nil, 0},
		{"single", []int{73}, 73},
		{"rounds up", []int{70, 75}, 73},   // 72.5
		{"rounds down", []int{70, 74}, 72}, // 72
		{"spec scenario", []int{90, 80, 70, 60, 100}, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := make([]Answer, len(tt.scores))
			for i, sc := range tt.scores {
				answers[i] = Answer{QuestionID: "q", Text: "a", Score: sc}
			}
			if got := averageScore(answers); got != tt.want {
				t.Errorf("averageScore(%v) = %d, want %d", tt.scores, got, tt.want)
			}
		})
	}
}

func TestElapsed_ZeroBeforeStart(t *testing.T) {
	s := NewSession("s1", "Software Engineer", testQuestions(1), DefaultDuration)
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0", s.Elapsed())
	}
}
