package evaluate

import (
	"context"
	"math/rand"
)

// LocalEvaluator is the offline placeholder scorer: a uniform score in
// [60,100] with threshold feedback. It exists so the practice flow works
// with no backend and no API key; it makes no claim of judging content.
type LocalEvaluator struct {
	rng *rand.Rand
}

// NewLocalEvaluator creates a local evaluator seeded from the given
// source. Pass a fixed seed in tests for reproducible scores.
func NewLocalEvaluator(seed int64) *LocalEvaluator {
	return &LocalEvaluator{rng: rand.New(rand.NewSource(seed))}
}

func (e *LocalEvaluator) Evaluate(_ context.Context, _ Input) (*Result, error) {
	score := e.rng.Intn(41) + 60
	return &Result{
		Score:    score,
		Feedback: FeedbackFor(score),
	}, nil
}

func (e *LocalEvaluator) Name() string {
	return "local"
}
