package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIEvaluator scores answers with the OpenAI SDK. It also works
// against OpenAI-compatible APIs via BaseURL.
type OpenAIEvaluator struct {
	client *openai.Client
	model  string
}

// NewOpenAIEvaluator creates a new OpenAI-backed evaluator.
func NewOpenAIEvaluator(cfg OpenAIConfig) (*OpenAIEvaluator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIEvaluator{
		client: openai.NewClientWithConfig(config),
		model:  resolveModel(cfg.Model, openaiModels),
	}, nil
}

func (e *OpenAIEvaluator) Evaluate(ctx context.Context, in Input) (*Result, error) {
	system, user := verdictPrompt(in)

	schemaBytes, err := json.Marshal(verdictSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxCompletionTokens: verdictMaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   verdictSchemaName,
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidVerdict{Err: fmt.Errorf("no choices in OpenAI response")}
	}

	v, err := parseVerdict(json.RawMessage(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, err
	}
	return &Result{Score: v.Score, Feedback: v.Feedback}, nil
}

func (e *OpenAIEvaluator) Name() string {
	return "openai"
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &ErrRateLimit{Err: err}
		}
	}
	return &ErrUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	// If not in the map, use as-is (allows direct model IDs).
	return name
}

// verdictMaxTokens bounds the model's output. A verdict is two short
// fields; this leaves generous headroom.
const verdictMaxTokens = 512
