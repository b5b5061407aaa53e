package evaluate

import (
	"context"
	"fmt"
	"time"

	"github.com/talentmatch/talentmatch/internal/api"
)

// New creates an Evaluator from configuration. The api client and
// candidate ID are only used by the remote evaluator; the others ignore
// them.
func New(ctx context.Context, cfg Config, client *api.Client, candidateID string) (Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case "remote":
		return NewRemoteEvaluator(client, candidateID), nil
	case "local":
		return NewLocalEvaluator(time.Now().UnixNano()), nil
	case "openai":
		return NewOpenAIEvaluator(cfg.OpenAI)
	case "anthropic":
		return NewAnthropicEvaluator(cfg.Anthropic)
	case "gemini":
		return NewGeminiEvaluator(ctx, cfg.Gemini)
	case "mock":
		return NewMockEvaluator(), nil
	default:
		return nil, fmt.Errorf("unknown evaluator: %q", cfg.Provider)
	}
}
