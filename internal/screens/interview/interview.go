package interview

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/evaluate"
	iv "github.com/talentmatch/talentmatch/internal/interview"
	"github.com/talentmatch/talentmatch/internal/router"
	"github.com/talentmatch/talentmatch/internal/screen"
	"github.com/talentmatch/talentmatch/internal/screens/summary"
	"github.com/talentmatch/talentmatch/internal/store"
	"github.com/talentmatch/talentmatch/internal/ui/components"
	"github.com/talentmatch/talentmatch/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseGate
	phaseActive
	phaseFinishing
)

// Screen runs one interview from the start gate through the last
// question. Practice runs score locally; scheduled runs fetch their
// questions from the backend and are finalized there.
type Screen struct {
	session   *iv.Session
	evaluator evaluate.Evaluator
	client    *api.Client
	eventRepo store.EventRepo

	mode        string // practice or scheduled
	jobRole     string
	interviewID string
	scheduled   time.Time

	phase         phase
	answer        components.TextArea
	evaluating    bool
	questionStart time.Time
	confirmQuit   bool
	note          string // inline message under the answer box
	errMsg        string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// NewPractice creates a practice run over the built-in question set.
func NewPractice(evaluator evaluate.Evaluator, eventRepo store.EventRepo, jobRole string) *Screen {
	return &Screen{
		evaluator: evaluator,
		eventRepo: eventRepo,
		mode:      "practice",
		jobRole:   jobRole,
		phase:     phaseLoading,
		answer:    newAnswerArea(),
	}
}

// NewScheduled creates a run for a booked interview. Questions are
// fetched from the backend and the result is submitted back on
// completion.
func NewScheduled(client *api.Client, evaluator evaluate.Evaluator, eventRepo store.EventRepo, booked api.Interview) *Screen {
	scheduled, _ := time.Parse(time.RFC3339, booked.Time)
	return &Screen{
		evaluator:   evaluator,
		client:      client,
		eventRepo:   eventRepo,
		mode:        "scheduled",
		jobRole:     booked.JobRole,
		interviewID: booked.ID,
		scheduled:   scheduled,
		phase:       phaseLoading,
		answer:      newAnswerArea(),
	}
}

func newAnswerArea() components.TextArea {
	return components.NewTextArea("Type your answer here...", 70, 8)
}

func (s *Screen) Title() string {
	if s.mode == "practice" {
		return "Practice Interview"
	}
	return "Interview"
}

func (s *Screen) Init() tea.Cmd {
	return s.loadQuestions()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseGate:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseActive:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit answer"},
			{Key: "Ctrl+P", Description: "Previous"},
			{Key: "Esc", Description: "Leave"},
		}
	}
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return s.handleQuestionsLoaded(msg)

	case answerScoredMsg:
		return s.handleScored(msg)

	case timerTickMsg:
		return s.handleTick()

	case finalizedMsg:
		return s.handleFinalized(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseActive && !s.evaluating && !s.confirmQuit {
		var cmd tea.Cmd
		s.answer, cmd = s.answer.Update(msg)
		return s, cmd
	}

	return s, nil
}

// loadQuestions builds the question list: the built-in set for
// practice, the backend's for a scheduled run.
func (s *Screen) loadQuestions() tea.Cmd {
	if s.mode == "practice" {
		return func() tea.Msg {
			return questionsLoadedMsg{Questions: iv.PracticeQuestions()}
		}
	}
	client, id := s.client, s.interviewID
	return func() tea.Msg {
		qs, err := client.QuestionsBySession(context.Background(), id)
		if err != nil {
			return questionsLoadedMsg{Err: err}
		}
		out := make([]iv.Question, len(qs))
		for i, q := range qs {
			out[i] = iv.Question{ID: q.ID, Text: q.QuestionText}
		}
		return questionsLoadedMsg{Questions: out}
	}
}

func (s *Screen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if len(msg.Questions) == 0 {
		s.errMsg = "No questions have been prepared for this interview yet."
		return s, nil
	}

	s.session = iv.NewSession(uuid.New().String(), s.jobRole, msg.Questions, iv.DefaultDuration)
	s.phase = phaseGate

	// Tick while gated so the "starts in" countdown stays current.
	if s.startsLater() {
		return s, tickCmd()
	}
	return s, nil
}

func (s *Screen) startsLater() bool {
	return !s.scheduled.IsZero() && time.Now().Before(s.scheduled)
}

func (s *Screen) begin() (screen.Screen, tea.Cmd) {
	if s.startsLater() {
		s.note = "This interview has not started yet."
		return s, nil
	}
	if err := s.session.Start(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.phase = phaseActive
	s.questionStart = time.Now()
	s.note = ""

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendInterviewEvent(context.Background(), store.InterviewEventData{
			SessionID:     s.session.ID,
			InterviewID:   s.interviewID,
			JobRole:       s.jobRole,
			Action:        "start",
			Mode:          s.mode,
			QuestionCount: len(s.session.Questions),
		})
	}

	return s, tea.Batch(s.answer.Init(), tickCmd())
}

func (s *Screen) handleTick() (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseGate:
		if s.startsLater() {
			return s, tickCmd()
		}
		s.note = ""
		return s, nil

	case phaseActive:
		if s.session.Tick() {
			// Budget exhausted; whatever was submitted stands.
			return s.finish("expire")
		}
		return s, tickCmd()
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.phase {
	case phaseGate:
		switch key {
		case "enter":
			return s.begin()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case phaseActive:
		if s.evaluating {
			return s, nil
		}
		switch key {
		case "esc":
			s.confirmQuit = true
			return s, nil
		case "ctrl+s":
			return s.submit()
		case "ctrl+p":
			return s.previous()
		}

		var cmd tea.Cmd
		s.answer, cmd = s.answer.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit sends the current answer to the evaluator. The session is not
// touched until the score comes back.
func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(s.answer.Value())
	if text == "" {
		s.note = "Answer cannot be empty."
		return s, nil
	}

	q, ok := s.session.CurrentQuestion()
	if !ok {
		return s, nil
	}

	s.evaluating = true
	s.note = ""

	evaluator, jobRole := s.evaluator, s.jobRole
	return s, func() tea.Msg {
		res, err := evaluator.Evaluate(context.Background(), evaluate.Input{
			Question: q,
			Answer:   text,
			JobRole:  jobRole,
		})
		return answerScoredMsg{QuestionID: q.ID, Answer: text, Result: res, Err: err}
	}
}

func (s *Screen) handleScored(msg answerScoredMsg) (screen.Screen, tea.Cmd) {
	// The timer can run out while the evaluator is working. The
	// wrap-up has already run by then, so the late result is dropped
	// rather than finishing the run a second time.
	if s.phase != phaseActive {
		return s, nil
	}
	s.evaluating = false

	if msg.Err != nil {
		s.note = "Scoring failed: " + msg.Err.Error() + " (Ctrl+S to retry)"
		return s, nil
	}

	timeMs := time.Since(s.questionStart).Milliseconds()
	err := s.session.RecordAnswer(iv.Answer{
		QuestionID: msg.QuestionID,
		Text:       msg.Answer,
		Score:      msg.Result.Score,
		Feedback:   msg.Result.Feedback,
	})
	if err != nil {
		s.note = err.Error()
		return s, nil
	}

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:    s.session.ID,
			QuestionID:   msg.QuestionID,
			QuestionText: s.questionText(msg.QuestionID),
			AnswerText:   msg.Answer,
			Score:        msg.Result.Score,
			Feedback:     msg.Result.Feedback,
			TimeMs:       timeMs,
			Evaluator:    s.evaluator.Name(),
		})
	}

	if s.session.Status == iv.StatusCompleted {
		return s.finish("complete")
	}

	// Advanced to the next question. Prefill with any earlier answer
	// so revisits keep their text.
	s.loadCurrentAnswer()
	s.questionStart = time.Now()
	return s, nil
}

// previous steps back one question, keeping the submitted answer.
func (s *Screen) previous() (screen.Screen, tea.Cmd) {
	if err := s.session.Previous(); err != nil {
		return s, nil
	}
	s.loadCurrentAnswer()
	s.note = ""
	return s, nil
}

// loadCurrentAnswer fills the answer area with the already-submitted
// answer for the current question, or clears it.
func (s *Screen) loadCurrentAnswer() {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		s.answer.Reset()
		return
	}
	if a, ok := s.session.AnswerFor(q.ID); ok {
		s.answer.SetValue(a.Text)
	} else {
		s.answer.Reset()
	}
}

func (s *Screen) questionText(questionID string) string {
	for _, q := range s.session.Questions {
		if q.ID == questionID {
			return q.Text
		}
	}
	return ""
}

// finish records the end of the run and hands over to the results
// screen. Scheduled runs also report the score to the backend.
func (s *Screen) finish(action string) (screen.Screen, tea.Cmd) {
	s.phase = phaseFinishing

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendInterviewEvent(context.Background(), store.InterviewEventData{
			SessionID:     s.session.ID,
			InterviewID:   s.interviewID,
			JobRole:       s.jobRole,
			Action:        action,
			Mode:          s.mode,
			QuestionCount: len(s.session.Questions),
			AnsweredCount: len(s.session.Answers),
			FinalScore:    s.session.FinalScore,
			DurationSecs:  int(s.session.Elapsed().Seconds()),
		})
	}

	if s.mode == "scheduled" && s.client != nil {
		client, id := s.client, s.interviewID
		return s, func() tea.Msg {
			finalized, err := client.FinalizeInterview(context.Background(), id)
			if err != nil {
				return finalizedMsg{Err: err}
			}
			return finalizedMsg{Score: finalized.Score}
		}
	}

	return s, s.showSummary(nil)
}

func (s *Screen) handleFinalized(msg finalizedMsg) (screen.Screen, tea.Cmd) {
	// A failed finalize still shows local results; the backend keeps
	// its own record and can be queried from the dashboard later.
	return s, s.showSummary(msg.Score)
}

func (s *Screen) showSummary(backendScore *int) tea.Cmd {
	sess := s.session
	mode := s.mode
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sess, mode, backendScore)}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
