package interview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/evaluate"
	iv "github.com/talentmatch/talentmatch/internal/interview"
	"github.com/talentmatch/talentmatch/internal/router"
	"github.com/talentmatch/talentmatch/internal/screen"
	"github.com/talentmatch/talentmatch/internal/screens/summary"
	"github.com/talentmatch/talentmatch/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	interviewEvents []store.InterviewEventData
	answerEvents    []store.AnswerEventData
}

func (m *mockEventRepo) AppendInterviewEvent(_ context.Context, data store.InterviewEventData) error {
	m.interviewEvents = append(m.interviewEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendEvaluation(_ context.Context, _ store.EvaluationEventData) error {
	return nil
}
func (m *mockEventRepo) QueryInterviewEvents(_ context.Context, _ store.QueryOpts) ([]store.InterviewEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AnswersBySession(_ context.Context, _ string) ([]store.AnswerEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) EvaluationStats(_ context.Context) ([]store.EvaluatorStats, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testQuestions(n int) []iv.Question {
	qs := make([]iv.Question, n)
	for i := range qs {
		qs[i] = iv.Question{ID: string(rune('a' + i)), Text: "Question"}
	}
	return qs
}

func testPracticeScreen(t *testing.T, n int) (*Screen, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	evaluator := evaluate.NewMockEvaluator(
		evaluate.MockResult{Result: &evaluate.Result{Score: 85, Feedback: "Great answer!"}},
		evaluate.MockResult{Result: &evaluate.Result{Score: 75, Feedback: "Good answer!"}},
		evaluate.MockResult{Result: &evaluate.Result{Score: 95, Feedback: "Excellent answer!"}},
	)
	s := NewPractice(evaluator, repo, "Software Engineer")

	var scr screen.Screen = s
	scr, _ = scr.Update(questionsLoadedMsg{Questions: testQuestions(n)})
	return scr.(*Screen), repo
}

func beginRun(t *testing.T, s *Screen) *Screen {
	t.Helper()
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	out := scr.(*Screen)
	if out.phase != phaseActive {
		t.Fatalf("phase after begin = %v, want active", out.phase)
	}
	return out
}

// submitAnswer drives one full submit round trip: keypress, evaluator
// command, scored message.
func submitAnswer(t *testing.T, s *Screen, text string) (*Screen, tea.Cmd) {
	t.Helper()
	s.answer.SetValue(text)
	scr, cmd := s.Update(ctrlKey('s'))
	ss := scr.(*Screen)
	if cmd == nil {
		return ss, nil
	}
	scored, ok := cmd().(answerScoredMsg)
	if !ok {
		return ss, nil
	}
	scr, cmd = ss.Update(scored)
	return scr.(*Screen), cmd
}

func TestInterviewScreen_GateAfterLoad(t *testing.T) {
	s, _ := testPracticeScreen(t, 3)
	if s.phase != phaseGate {
		t.Errorf("phase = %v, want gate", s.phase)
	}
	if s.session == nil {
		t.Fatal("expected a session after questions loaded")
	}
	if s.session.Status != iv.StatusNotStarted {
		t.Errorf("session status = %v, want not started", s.session.Status)
	}
}

func TestInterviewScreen_EmptyQuestionList(t *testing.T) {
	repo := &mockEventRepo{}
	s := NewPractice(evaluate.NewMockEvaluator(), repo, "")
	scr, _ := s.Update(questionsLoadedMsg{Questions: nil})
	ss := scr.(*Screen)
	if ss.errMsg == "" {
		t.Error("expected an error message for an empty question list")
	}
}

func TestInterviewScreen_BeginAppendsStartEvent(t *testing.T) {
	s, repo := testPracticeScreen(t, 3)
	beginRun(t, s)

	if len(repo.interviewEvents) != 1 {
		t.Fatalf("interview events = %d, want 1", len(repo.interviewEvents))
	}
	if repo.interviewEvents[0].Action != "start" {
		t.Errorf("action = %q, want start", repo.interviewEvents[0].Action)
	}
	if repo.interviewEvents[0].QuestionCount != 3 {
		t.Errorf("question count = %d, want 3", repo.interviewEvents[0].QuestionCount)
	}
}

func TestInterviewScreen_SubmitEmptyAnswer(t *testing.T) {
	s, repo := testPracticeScreen(t, 3)
	s = beginRun(t, s)

	s.answer.SetValue("   ")
	scr, cmd := s.Update(ctrlKey('s'))
	ss := scr.(*Screen)
	if cmd != nil {
		t.Error("empty answer should not reach the evaluator")
	}
	if ss.note == "" {
		t.Error("expected an inline note for an empty answer")
	}
	if len(repo.answerEvents) != 0 {
		t.Errorf("answer events = %d, want 0", len(repo.answerEvents))
	}
}

func TestInterviewScreen_SubmitAdvancesAndLogs(t *testing.T) {
	s, repo := testPracticeScreen(t, 3)
	s = beginRun(t, s)

	s, _ = submitAnswer(t, s, "My answer")
	if s.session.Current != 1 {
		t.Errorf("current = %d, want 1", s.session.Current)
	}
	if len(s.session.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(s.session.Answers))
	}
	if s.session.Answers[0].Score != 85 {
		t.Errorf("score = %d, want 85", s.session.Answers[0].Score)
	}

	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	if repo.answerEvents[0].Evaluator != "mock" {
		t.Errorf("evaluator = %q, want mock", repo.answerEvents[0].Evaluator)
	}
}

func TestInterviewScreen_LastAnswerCompletesRun(t *testing.T) {
	s, repo := testPracticeScreen(t, 2)
	s = beginRun(t, s)

	s, _ = submitAnswer(t, s, "first")
	s, cmd := submitAnswer(t, s, "second")

	if s.session.Status != iv.StatusCompleted {
		t.Errorf("status = %v, want completed", s.session.Status)
	}
	// 85 and 75 average to 80.
	if s.session.FinalScore != 80 {
		t.Errorf("final score = %d, want 80", s.session.FinalScore)
	}

	// start + complete events.
	if len(repo.interviewEvents) != 2 {
		t.Fatalf("interview events = %d, want 2", len(repo.interviewEvents))
	}
	last := repo.interviewEvents[1]
	if last.Action != "complete" {
		t.Errorf("action = %q, want complete", last.Action)
	}
	if last.FinalScore != 80 {
		t.Errorf("event final score = %d, want 80", last.FinalScore)
	}

	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*summary.Screen); !ok {
		t.Errorf("expected summary screen, got %T", replace.Screen)
	}
}

func TestInterviewScreen_PreviousKeepsAnswer(t *testing.T) {
	s, _ := testPracticeScreen(t, 3)
	s = beginRun(t, s)

	s, _ = submitAnswer(t, s, "first answer")
	scr, _ := s.Update(ctrlKey('p'))
	s = scr.(*Screen)

	if s.session.Current != 0 {
		t.Errorf("current = %d, want 0", s.session.Current)
	}
	if s.answer.Value() != "first answer" {
		t.Errorf("answer prefill = %q, want the submitted text", s.answer.Value())
	}
}

func TestInterviewScreen_ResubmitOverwrites(t *testing.T) {
	s, _ := testPracticeScreen(t, 3)
	s = beginRun(t, s)

	s, _ = submitAnswer(t, s, "first try")
	scr, _ := s.Update(ctrlKey('p'))
	s = scr.(*Screen)
	s, _ = submitAnswer(t, s, "second try")

	if len(s.session.Answers) != 1 {
		t.Fatalf("answers = %d, want 1 after overwrite", len(s.session.Answers))
	}
	if s.session.Answers[0].Text != "second try" {
		t.Errorf("answer text = %q, want the resubmission", s.session.Answers[0].Text)
	}
	if s.session.Answers[0].Score != 75 {
		t.Errorf("score = %d, want the new score 75", s.session.Answers[0].Score)
	}
}

func TestInterviewScreen_ExpiryFinishesRun(t *testing.T) {
	s, repo := testPracticeScreen(t, 3)
	s = beginRun(t, s)

	s, _ = submitAnswer(t, s, "only answer")
	s.session.Remaining = time.Second

	scr, cmd := s.Update(timerTickMsg(time.Now()))
	s = scr.(*Screen)

	if s.session.Status != iv.StatusCompleted {
		t.Errorf("status = %v, want completed after expiry", s.session.Status)
	}
	last := repo.interviewEvents[len(repo.interviewEvents)-1]
	if last.Action != "expire" {
		t.Errorf("action = %q, want expire", last.Action)
	}
	if last.AnsweredCount != 1 {
		t.Errorf("answered count = %d, want 1", last.AnsweredCount)
	}
	if cmd == nil {
		t.Fatal("expected a command after expiry")
	}
}

func TestInterviewScreen_LateResultAfterExpiry(t *testing.T) {
	s, repo := testPracticeScreen(t, 3)
	s = beginRun(t, s)

	// The evaluation is in flight when the timer runs out.
	s.answer.SetValue("slow answer")
	scr, cmd := s.Update(ctrlKey('s'))
	s = scr.(*Screen)
	scored := cmd().(answerScoredMsg)

	s.session.Remaining = time.Second
	scr, cmd = s.Update(timerTickMsg(time.Now()))
	s = scr.(*Screen)
	if s.phase != phaseFinishing {
		t.Fatalf("phase = %v, want finishing after expiry", s.phase)
	}
	if cmd == nil {
		t.Fatal("expected a wrap-up command after expiry")
	}

	scr, cmd = s.Update(scored)
	s = scr.(*Screen)
	if len(s.session.Answers) != 0 {
		t.Errorf("late answer should be discarded, got %d answers", len(s.session.Answers))
	}
	if cmd != nil {
		t.Error("a late result must not trigger a second wrap-up")
	}

	ends := 0
	for _, e := range repo.interviewEvents {
		if e.Action != "start" {
			ends++
		}
	}
	if ends != 1 {
		t.Errorf("end events = %d, want exactly 1", ends)
	}
}

func TestInterviewScreen_LateResultFinalizesOnce(t *testing.T) {
	finalizes := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/interview/submit/") {
			finalizes++
			_ = json.NewEncoder(w).Encode(api.Interview{ID: "int-1"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	repo := &mockEventRepo{}
	evaluator := evaluate.NewMockEvaluator(
		evaluate.MockResult{Result: &evaluate.Result{Score: 85, Feedback: "ok"}},
	)
	s := NewScheduled(api.NewClient(server.URL), evaluator, repo, api.Interview{
		ID:      "int-1",
		JobRole: "Software Engineer",
		Time:    time.Now().Add(-time.Minute).Format(time.RFC3339),
	})
	scr, _ := s.Update(questionsLoadedMsg{Questions: testQuestions(2)})
	s = beginRun(t, scr.(*Screen))

	s.answer.SetValue("slow answer")
	scr, cmd := s.Update(ctrlKey('s'))
	s = scr.(*Screen)
	scored := cmd().(answerScoredMsg)

	s.session.Remaining = time.Second
	scr, cmd = s.Update(timerTickMsg(time.Now()))
	s = scr.(*Screen)
	if cmd == nil {
		t.Fatal("expected a wrap-up command after expiry")
	}
	if _, ok := cmd().(finalizedMsg); !ok {
		t.Fatal("expected expiry to report the result to the backend")
	}

	scr, cmd = s.Update(scored)
	s = scr.(*Screen)
	if cmd != nil {
		t.Error("a late result must not report to the backend again")
	}
	if finalizes != 1 {
		t.Errorf("finalize calls = %d, want 1", finalizes)
	}

	ends := 0
	for _, e := range repo.interviewEvents {
		if e.Action != "start" {
			ends++
		}
	}
	if ends != 1 {
		t.Errorf("end events = %d, want exactly 1", ends)
	}
}

func TestInterviewScreen_ScoringFailureKeepsQuestion(t *testing.T) {
	repo := &mockEventRepo{}
	evaluator := evaluate.NewMockEvaluator(
		evaluate.MockResult{Err: &evaluate.ErrUnavailable{}},
	)
	s := NewPractice(evaluator, repo, "")
	scr, _ := s.Update(questionsLoadedMsg{Questions: testQuestions(2)})
	s = beginRun(t, scr.(*Screen))

	s.answer.SetValue("answer")
	scr, cmd := s.Update(ctrlKey('s'))
	s = scr.(*Screen)
	scored := cmd().(answerScoredMsg)
	scr, _ = s.Update(scored)
	s = scr.(*Screen)

	if s.session.Current != 0 {
		t.Errorf("current = %d, want 0 after a failed scoring", s.session.Current)
	}
	if s.note == "" {
		t.Error("expected a retry note after a failed scoring")
	}
	if s.answer.Value() != "answer" {
		t.Errorf("answer text = %q, want preserved for retry", s.answer.Value())
	}
}

func TestInterviewScreen_QuitConfirm(t *testing.T) {
	s, _ := testPracticeScreen(t, 3)
	s = beginRun(t, s)

	scr, _ := s.Update(specialKey(tea.KeyEscape))
	s = scr.(*Screen)
	if !s.confirmQuit {
		t.Error("expected quit confirmation after esc")
	}

	scr, _ = s.Update(keyPress('n'))
	s = scr.(*Screen)
	if s.confirmQuit {
		t.Error("expected quit confirmation dismissed after n")
	}

	scr, _ = s.Update(specialKey(tea.KeyEscape))
	s = scr.(*Screen)
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestInterviewScreen_KeyHints(t *testing.T) {
	s, _ := testPracticeScreen(t, 3)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints in the gate phase")
	}
	s = beginRun(t, s)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints in the active phase")
	}
}

func TestInterviewScreen_View(t *testing.T) {
	s, _ := testPracticeScreen(t, 3)
	if s.View(100, 30) == "" {
		t.Error("expected non-empty gate view")
	}
	s = beginRun(t, s)
	if s.View(100, 30) == "" {
		t.Error("expected non-empty question view")
	}
}
