package evaluate

import (
	"context"
	"fmt"

	"github.com/talentmatch/talentmatch/internal/api"
)

// RemoteEvaluator delegates scoring to the assessment backend: the
// answer is submitted once and the score comes back on the response.
// There is no retry here; a failed submission is reported to the user,
// who re-triggers it.
type RemoteEvaluator struct {
	client      *api.Client
	candidateID string
}

// NewRemoteEvaluator creates an evaluator that submits answers on
// behalf of the given candidate.
func NewRemoteEvaluator(client *api.Client, candidateID string) *RemoteEvaluator {
	return &RemoteEvaluator{client: client, candidateID: candidateID}
}

func (e *RemoteEvaluator) Evaluate(ctx context.Context, in Input) (*Result, error) {
	ans, err := e.client.SubmitAnswer(ctx, api.AnswerInput{
		CandidateID: e.candidateID,
		QuestionID:  in.Question.ID,
		AnswerText:  in.Answer,
	})
	if err != nil {
		return nil, fmt.Errorf("submit answer for scoring: %w", err)
	}

	res := &Result{Feedback: ans.Feedback}
	if ans.Score != nil {
		res.Score = clampScore(*ans.Score)
		if res.Feedback == "" {
			res.Feedback = FeedbackFor(res.Score)
		}
	} else {
		// Some backends score asynchronously; the per-answer score then
		// only shows up in the finalized interview.
		res.Feedback = "Answer recorded. Evaluation pending."
	}
	return res, nil
}

func (e *RemoteEvaluator) Name() string {
	return "remote"
}
