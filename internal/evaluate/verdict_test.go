package evaluate

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/talentmatch/talentmatch/internal/interview"
)

func TestParseVerdict_Valid(t *testing.T) {
	raw := json.RawMessage(`{"score":85,"feedback":"Solid coverage of the tradeoffs."}`)
	v, err := parseVerdict(raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if v.Score != 85 {
		t.Errorf("score = %d, want 85", v.Score)
	}
	if v.Feedback != "Solid coverage of the tradeoffs." {
		t.Errorf("unexpected feedback: %q", v.Feedback)
	}
}

func TestParseVerdict_MissingFeedback(t *testing.T) {
	raw := json.RawMessage(`{"score":70}`)
	_, err := parseVerdict(raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidVerdict
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidVerdict, got: %T", err)
	}
}

func TestParseVerdict_ScoreOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"score":150,"feedback":"?"}`)
	_, err := parseVerdict(raw)
	if err == nil {
		t.Fatal("expected error for score above 100")
	}
	var invErr *ErrInvalidVerdict
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidVerdict, got: %T", err)
	}
}

func TestParseVerdict_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"score":"eighty","feedback":"?"}`)
	_, err := parseVerdict(raw)
	if err == nil {
		t.Fatal("expected error for wrong score type")
	}
}

func TestParseVerdict_ExtraField(t *testing.T) {
	raw := json.RawMessage(`{"score":80,"feedback":"ok","notes":"extra"}`)
	_, err := parseVerdict(raw)
	if err == nil {
		t.Fatal("expected error for additional property")
	}
}

func TestParseVerdict_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	_, err := parseVerdict(raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidVerdict
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidVerdict, got: %T", err)
	}
	if string(invErr.Content) != `{not json}` {
		t.Errorf("content not preserved: %q", invErr.Content)
	}
}

func TestVerdictPrompt_IncludesContext(t *testing.T) {
	system, user := verdictPrompt(Input{
		Question: interview.Question{
			ID:         "q1",
			Text:       "Explain aliasing in sampled systems.",
			Category:   "Signal Processing",
			Difficulty: interview.Medium,
		},
		Answer:  "Aliasing folds frequencies above Nyquist back into band.",
		JobRole: "DSP Engineer",
	})

	if system == "" {
		t.Fatal("system prompt is empty")
	}
	for _, want := range []string{
		"DSP Engineer",
		"Signal Processing",
		"Explain aliasing in sampled systems.",
		"Aliasing folds frequencies above Nyquist back into band.",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestVerdictPrompt_OmitsEmptyContext(t *testing.T) {
	_, user := verdictPrompt(Input{
		Question: interview.Question{ID: "q1", Text: "What is a mutex?"},
		Answer:   "A lock.",
	})
	if strings.Contains(user, "Role under assessment") {
		t.Error("user prompt mentions role when none was given")
	}
	if strings.Contains(user, "Category:") {
		t.Error("user prompt mentions category when none was given")
	}
}
