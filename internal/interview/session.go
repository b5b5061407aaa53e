package interview

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultDuration is the time budget for one interview attempt.
const DefaultDuration = 30 * time.Minute

var (
	// ErrInvalidTransition is returned when a lifecycle method is called
	// in a status that forbids it.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrEmptyAnswer is returned when a submitted answer is empty after
	// trimming whitespace.
	ErrEmptyAnswer = errors.New("answer text is empty")

	// ErrNoQuestions is returned when a session is started with no questions.
	ErrNoQuestions = errors.New("session has no questions")
)

// Status is the lifecycle state of a Session. Transitions are strictly
// forward: NotStarted → InProgress → Completed.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	default:
		return "not_started"
	}
}

// Difficulty grades a question.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Question is one interview prompt. Immutable once the session starts.
type Question struct {
	ID         string
	Text       string
	Category   string
	Difficulty Difficulty
}

// Answer is a candidate's scored response to one question.
type Answer struct {
	QuestionID string
	Text       string
	Score      int
	Feedback   string
}

// Session drives one candidate linearly through a fixed question set
// under a single countdown. It holds UI-local state only; nothing here
// talks to the network. A session is never reopened once completed; a
// fresh attempt gets a fresh Session.
type Session struct {
	ID        string
	JobRole   string
	Questions []Question

	// Answers holds at most one entry per question, in first-submission
	// order. Re-submitting after Previous overwrites in place.
	Answers []Answer

	Current    int
	Status     Status
	Budget     time.Duration
	Remaining  time.Duration
	StartedAt  time.Time
	EndedAt    time.Time
	FinalScore int
}

// NewSession creates a session in the not_started state.
func NewSession(id, jobRole string, questions []Question, budget time.Duration) *Session {
	if budget <= 0 {
		budget = DefaultDuration
	}
	return &Session{
		ID:        id,
		JobRole:   jobRole,
		Questions: questions,
		Budget:    budget,
		Remaining: budget,
	}
}

// Start moves the session to in_progress and arms the countdown.
// Calling it again later does not reset the start time or answers.
func (s *Session) Start() error {
	if s.Status != StatusNotStarted {
		return fmt.Errorf("start from %s: %w", s.Status, ErrInvalidTransition)
	}
	if len(s.Questions) == 0 {
		return ErrNoQuestions
	}
	s.Status = StatusInProgress
	s.StartedAt = time.Now()
	s.Current = 0
	s.Remaining = s.Budget
	return nil
}

// CurrentQuestion returns the question at the cursor.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Current], true
}

// AnswerFor returns the submitted answer for a question, if any.
func (s *Session) AnswerFor(questionID string) (Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// RecordAnswer stores a scored answer for the current question and
// advances the cursor, completing the session after the last question.
// An answer for an already-answered question (reached via Previous)
// overwrites the earlier one, so len(Answers) never exceeds
// len(Questions). A result arriving after completion (the timer can
// fire while an evaluation is in flight) is rejected and discarded.
func (s *Session) RecordAnswer(a Answer) error {
	if s.Status != StatusInProgress {
		return fmt.Errorf("record answer in %s: %w", s.Status, ErrInvalidTransition)
	}
	if strings.TrimSpace(a.Text) == "" {
		return ErrEmptyAnswer
	}
	q := s.Questions[s.Current]
	if a.QuestionID != "" && a.QuestionID != q.ID {
		return fmt.Errorf("answer targets question %s, current is %s", a.QuestionID, q.ID)
	}
	a.QuestionID = q.ID

	replaced := false
	for i := range s.Answers {
		if s.Answers[i].QuestionID == a.QuestionID {
			s.Answers[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		s.Answers = append(s.Answers, a)
	}

	if s.Current == len(s.Questions)-1 {
		s.Complete()
		return nil
	}
	s.Current++
	return nil
}

// Previous steps the cursor back one question. A no-op at index 0.
// The answer already recorded for the revisited question stays intact.
func (s *Session) Previous() error {
	if s.Status != StatusInProgress {
		return fmt.Errorf("previous in %s: %w", s.Status, ErrInvalidTransition)
	}
	if s.Current > 0 {
		s.Current--
	}
	return nil
}

// Tick consumes one second of the budget. Returns true when this tick
// exhausted the countdown and forced completion. Ticks outside
// in_progress have no effect, so a stray timer firing after completion
// or teardown cannot mutate the session.
func (s *Session) Tick() bool {
	if s.Status != StatusInProgress {
		return false
	}
	s.Remaining -= time.Second
	if s.Remaining <= 0 {
		s.Remaining = 0
		s.Complete()
		return true
	}
	return false
}

// Complete finalizes the session. Idempotent; safe to reach from both
// the last-answer path and the timer path. The final score averages the
// submitted answers only: an attempt cut short after k of n answers
// averages over k.
func (s *Session) Complete() {
	if s.Status != StatusInProgress {
		return
	}
	s.Status = StatusCompleted
	s.EndedAt = time.Now()
	s.FinalScore = averageScore(s.Answers)
}

// Elapsed reports how long the attempt has been (or was) running.
func (s *Session) Elapsed() time.Duration {
	switch s.Status {
	case StatusNotStarted:
		return 0
	case StatusCompleted:
		return s.EndedAt.Sub(s.StartedAt)
	default:
		return time.Since(s.StartedAt)
	}
}

// averageScore rounds the mean of the submitted scores. Zero answers
// yields zero.
func averageScore(answers []Answer) int {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range answers {
		sum += a.Score
	}
	return int(math.Round(float64(sum) / float64(len(answers))))
}
