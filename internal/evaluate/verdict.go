package evaluate

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// verdict is the structured output every LLM-backed evaluator requests.
type verdict struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// verdictSchemaName identifies the compiled schema in the cache.
const verdictSchemaName = "answer-verdict"

// verdictSchema is the JSON Schema the model's output must satisfy.
var verdictSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"score": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"maximum":     100,
			"description": "Overall quality of the answer, 0-100.",
		},
		"feedback": map[string]any{
			"type":        "string",
			"description": "One or two sentences of actionable feedback.",
		},
	},
	"required":             []any{"score", "feedback"},
	"additionalProperties": false,
}

var (
	compileOnce     sync.Once
	compiledVerdict *jsonschema.Schema
	compileErr      error
)

// parseVerdict validates raw model output against the verdict schema
// and decodes it. Returns *ErrInvalidVerdict on any failure.
func parseVerdict(raw json.RawMessage) (*verdict, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledVerdictSchema()
	if err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var v verdict
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: err}
	}
	v.Score = clampScore(v.Score)
	return &v, nil
}

func compiledVerdictSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(verdictSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", verdictSchemaName)
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledVerdict, compileErr = c.Compile(url)
	})
	return compiledVerdict, compileErr
}

// verdictPrompt builds the scoring prompt shared by all LLM providers.
func verdictPrompt(in Input) (system, user string) {
	system = "You are a technical interviewer scoring one answer. " +
		"Judge correctness, depth, and relevance to the question. " +
		"Respond with JSON only: an integer score 0-100 and one or two " +
		"sentences of feedback."

	var b strings.Builder
	if in.JobRole != "" {
		fmt.Fprintf(&b, "Role under assessment: %s\n", in.JobRole)
	}
	if in.Question.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", in.Question.Category)
	}
	if in.Question.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", in.Question.Difficulty)
	}
	fmt.Fprintf(&b, "Question: %s\n\nCandidate's answer:\n%s\n", in.Question.Text, in.Answer)
	return system, b.String()
}
