// Package evaluate scores interview answers. The interview flow only
// sees the Evaluator interface; whether the score comes from the
// assessment backend, an LLM, or the local placeholder is wiring.
package evaluate

import (
	"context"

	"github.com/talentmatch/talentmatch/internal/interview"
)

// Input carries everything an evaluator may use to judge one answer.
type Input struct {
	Question interview.Question
	Answer   string
	JobRole  string
}

// Result is one scored answer. Score is on the backend's 0-100 scale.
type Result struct {
	Score    int
	Feedback string
}

// Evaluator assigns a score and feedback to a submitted answer.
type Evaluator interface {
	// Evaluate scores one answer. Implementations may block on the
	// network; callers run them off the UI loop.
	Evaluate(ctx context.Context, in Input) (*Result, error)

	// Name identifies the evaluator for display and event logging.
	Name() string
}

// FeedbackFor maps a score to the canned feedback line shown with it.
func FeedbackFor(score int) string {
	switch {
	case score >= 90:
		return "Excellent! Comprehensive and technically sound answer."
	case score >= 80:
		return "Good answer with strong technical understanding."
	case score >= 70:
		return "Satisfactory response, could benefit from more detail."
	case score >= 60:
		return "Basic understanding shown, needs improvement."
	default:
		return "Insufficient answer, requires significant improvement."
	}
}

// clampScore forces a score into the 0-100 range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
