package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// GeminiEvaluator scores answers with the Google Gemini SDK.
type GeminiEvaluator struct {
	client *genai.Client
	model  string
}

// NewGeminiEvaluator creates a new Gemini-backed evaluator.
func NewGeminiEvaluator(ctx context.Context, cfg GeminiConfig) (*GeminiEvaluator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiEvaluator{
		client: client,
		model:  resolveModel(cfg.Model, geminiModels),
	}, nil
}

func (e *GeminiEvaluator) Evaluate(ctx context.Context, in Input) (*Result, error) {
	system, user := verdictPrompt(in)

	config := &genai.GenerateContentConfig{
		MaxOutputTokens:  verdictMaxTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   buildGeminiSchema(verdictSchema),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: user}}},
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	v, err := parseVerdict(json.RawMessage(result.Text()))
	if err != nil {
		return nil, err
	}
	return &Result{Score: v.Score, Feedback: v.Feedback}, nil
}

func (e *GeminiEvaluator) Name() string {
	return "gemini"
}

// buildGeminiSchema converts a JSON Schema definition map to a
// genai.Schema. Gemini takes its own schema type rather than raw JSON
// Schema.
func buildGeminiSchema(def map[string]any) *genai.Schema {
	schema := &genai.Schema{}

	if t, ok := def["type"].(string); ok {
		schema.Type = mapGeminiType(t)
	}
	if desc, ok := def["description"].(string); ok {
		schema.Description = desc
	}

	if props, ok := def["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema)
		for k, v := range props {
			if propDef, ok := v.(map[string]any); ok {
				schema.Properties[k] = buildGeminiSchema(propDef)
			}
		}
	}

	if req, ok := def["required"].([]any); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}

	return schema
}

func mapGeminiType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return &ErrRateLimit{Err: err}
		}
	}
	return &ErrUnavailable{Err: err}
}
