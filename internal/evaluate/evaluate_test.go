package evaluate

import (
	"context"
	"errors"
	"testing"

	"github.com/talentmatch/talentmatch/internal/interview"
)

func TestFeedbackFor_Thresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent! Comprehensive and technically sound answer."},
		{90, "Excellent! Comprehensive and technically sound answer."},
		{89, "Good answer with strong technical understanding."},
		{80, "Good answer with strong technical understanding."},
		{79, "Satisfactory response, could benefit from more detail."},
		{70, "Satisfactory response, could benefit from more detail."},
		{69, "Basic understanding shown, needs improvement."},
		{60, "Basic understanding shown, needs improvement."},
		{59, "Insufficient answer, requires significant improvement."},
		{0, "Insufficient answer, requires significant improvement."},
	}
	for _, tt := range tests {
		if got := FeedbackFor(tt.score); got != tt.want {
			t.Errorf("FeedbackFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{120, 100},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Errorf("clampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLocalEvaluator_ScoreRange(t *testing.T) {
	e := NewLocalEvaluator(1)
	in := Input{
		Question: interview.Question{ID: "q1", Text: "What is DMA?"},
		Answer:   "Direct memory access.",
	}

	for i := 0; i < 200; i++ {
		res, err := e.Evaluate(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Score < 60 || res.Score > 100 {
			t.Fatalf("score %d out of [60,100]", res.Score)
		}
		if res.Feedback != FeedbackFor(res.Score) {
			t.Fatalf("feedback does not match threshold for score %d", res.Score)
		}
	}
}

func TestLocalEvaluator_Deterministic(t *testing.T) {
	in := Input{Question: interview.Question{ID: "q1", Text: "?"}, Answer: "a"}

	a := NewLocalEvaluator(42)
	b := NewLocalEvaluator(42)
	for i := 0; i < 10; i++ {
		ra, _ := a.Evaluate(context.Background(), in)
		rb, _ := b.Evaluate(context.Background(), in)
		if ra.Score != rb.Score {
			t.Fatalf("run %d: same seed gave %d and %d", i, ra.Score, rb.Score)
		}
	}
}

func TestMockEvaluator_FIFO(t *testing.T) {
	m := NewMockEvaluator(
		MockResult{Result: &Result{Score: 90, Feedback: "first"}},
		MockResult{Err: &ErrUnavailable{}},
	)
	in := Input{Question: interview.Question{ID: "q1"}, Answer: "a"}

	res, err := m.Evaluate(context.Background(), in)
	if err != nil {
		t.Fatalf("first call: unexpected error: %v", err)
	}
	if res.Score != 90 || res.Feedback != "first" {
		t.Errorf("first call: got %+v", res)
	}

	_, err = m.Evaluate(context.Background(), in)
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("second call: expected ErrUnavailable, got %v", err)
	}

	// Queue exhausted.
	_, err = m.Evaluate(context.Background(), in)
	if !errors.As(err, &unavail) {
		t.Fatalf("third call: expected ErrUnavailable, got %v", err)
	}

	if m.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", m.CallCount())
	}
	if m.Calls[0].Question.ID != "q1" {
		t.Errorf("recorded call has question %q", m.Calls[0].Question.ID)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "openai"}, nil, "")
	if err == nil {
		t.Fatal("expected an error for a provider missing its API key")
	}

	ev, err := New(context.Background(), Config{Provider: "mock"}, nil, "")
	if err != nil {
		t.Fatalf("mock provider: %v", err)
	}
	if ev == nil {
		t.Fatal("expected an evaluator")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"remote needs no key", Config{Provider: "remote"}, false},
		{"local needs no key", Config{Provider: "local"}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"unknown provider", Config{Provider: "oracle"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config with no keys set")
	}

	t.Setenv("ANTHROPIC_API_KEY", "ak")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "ak" {
		t.Fatalf("got %+v, ok=%v", cfg, ok)
	}

	// Gemini wins over the others when several keys are present.
	t.Setenv("OPENAI_API_KEY", "ok")
	t.Setenv("GEMINI_API_KEY", "gk")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("got provider %q, ok=%v", cfg.Provider, ok)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TALENTMATCH_EVALUATOR", "openai")
	t.Setenv("TALENTMATCH_OPENAI_API_KEY", "key")
	t.Setenv("TALENTMATCH_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "key" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI config = %+v", cfg.OpenAI)
	}
	// Unset sections keep defaults.
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("Gemini.Model = %q, want default", cfg.Gemini.Model)
	}
}
