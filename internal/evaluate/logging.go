package evaluate

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/talentmatch/talentmatch/internal/store"
)

// LoggingEvaluator is a decorator that records every scoring call as an
// event in the local history.
type LoggingEvaluator struct {
	inner     Evaluator
	eventRepo store.EventRepo
}

// WithLogging wraps an Evaluator with event logging.
func WithLogging(e Evaluator, repo store.EventRepo) Evaluator {
	return &LoggingEvaluator{inner: e, eventRepo: repo}
}

func (l *LoggingEvaluator) Evaluate(ctx context.Context, in Input) (*Result, error) {
	start := time.Now()

	res, err := l.inner.Evaluate(ctx, in)

	data := store.EvaluationEventData{
		Evaluator:  l.inner.Name(),
		QuestionID: in.Question.ID,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if res != nil {
		data.Score = res.Score
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the call if logging fails.
	if logErr := l.eventRepo.AppendEvaluation(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log evaluation event: %v\n", logErr)
	}

	return res, err
}

func (l *LoggingEvaluator) Name() string {
	return l.inner.Name()
}
