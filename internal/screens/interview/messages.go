package interview

import (
	"time"

	"github.com/talentmatch/talentmatch/internal/evaluate"
	iv "github.com/talentmatch/talentmatch/internal/interview"
)

// questionsLoadedMsg is sent when the session's questions have been
// fetched from the backend (or built locally for practice).
type questionsLoadedMsg struct {
	Questions []iv.Question
	Err       error
}

// answerScoredMsg is sent when the evaluator has scored the submitted
// answer.
type answerScoredMsg struct {
	QuestionID string
	Answer     string
	Result     *evaluate.Result
	Err        error
}

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// finalizedMsg is sent when the backend has acknowledged completion.
type finalizedMsg struct {
	Score *int
	Err   error
}
