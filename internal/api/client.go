package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the compiled-in assessment backend endpoint.
const DefaultBaseURL = "https://hackathon-504442537671.europe-west1.run.app"

const defaultTimeout = 30 * time.Second

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
}

// Client talks plain JSON over HTTP to the assessment backend. Calls are
// not retried and responses are not cached; a failure is the caller's to
// surface. Identity is asserted by ids in the request body, never by a
// token.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// NewClient creates a client for the given base URL. An empty baseURL
// falls back to the TALENTMATCH_API_URL environment variable, then to
// the compiled-in default.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("TALENTMATCH_API_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateCandidate registers a candidate and returns the stored profile.
func (c *Client) CreateCandidate(ctx context.Context, in CandidateInput) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodPost, "/candidates/", in, &out); err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}
	return &out, nil
}

// CreateExpert registers an expert and returns the stored profile.
func (c *Client) CreateExpert(ctx context.Context, in ExpertInput) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodPost, "/experts/", in, &out); err != nil {
		return nil, fmt.Errorf("create expert: %w", err)
	}
	return &out, nil
}

// CreateInterview books an interview for a candidate.
func (c *Client) CreateInterview(ctx context.Context, in InterviewInput) (*Interview, error) {
	var out Interview
	if err := c.do(ctx, http.MethodPost, "/interview/", in, &out); err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}
	return &out, nil
}

// Interview fetches one interview by id.
func (c *Client) Interview(ctx context.Context, id string) (*Interview, error) {
	var out Interview
	if err := c.do(ctx, http.MethodGet, "/interview/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("fetch interview: %w", err)
	}
	return &out, nil
}

// InterviewsByCandidate lists a candidate's interviews.
func (c *Client) InterviewsByCandidate(ctx context.Context, candidateID string) ([]Interview, error) {
	var out []Interview
	if err := c.do(ctx, http.MethodGet, "/interview/candidate/"+url.PathEscape(candidateID), nil, &out); err != nil {
		return nil, fmt.Errorf("fetch candidate interviews: %w", err)
	}
	return out, nil
}

// FinalizeInterview asks the backend to compute the interview's final
// score and returns the updated record.
func (c *Client) FinalizeInterview(ctx context.Context, id string) (*Interview, error) {
	var out Interview
	if err := c.do(ctx, http.MethodPost, "/interview/submit/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("finalize interview: %w", err)
	}
	return &out, nil
}

// AssignmentsByExpert lists the sessions assigned to an expert.
func (c *Client) AssignmentsByExpert(ctx context.Context, expertID string) ([]Assignment, error) {
	var out []Assignment
	if err := c.do(ctx, http.MethodGet, "/assignments/expert/"+url.PathEscape(expertID), nil, &out); err != nil {
		return nil, fmt.Errorf("fetch expert assignments: %w", err)
	}
	return out, nil
}

// QuestionsBySession lists the questions attached to an interview session.
func (c *Client) QuestionsBySession(ctx context.Context, sessionID string) ([]Question, error) {
	var out []Question
	if err := c.do(ctx, http.MethodGet, "/questions/session/"+url.PathEscape(sessionID), nil, &out); err != nil {
		return nil, fmt.Errorf("fetch session questions: %w", err)
	}
	return out, nil
}

// SubmitQuestion adds an expert-authored question to a session.
func (c *Client) SubmitQuestion(ctx context.Context, in QuestionInput) (*Question, error) {
	var out Question
	if err := c.do(ctx, http.MethodPost, "/questions/submit", in, &out); err != nil {
		return nil, fmt.Errorf("submit question: %w", err)
	}
	return &out, nil
}

// SubmitAnswer sends a candidate's answer for evaluation.
func (c *Client) SubmitAnswer(ctx context.Context, in AnswerInput) (*Answer, error) {
	var out Answer
	if err := c.do(ctx, http.MethodPost, "/answers/submit", in, &out); err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}
	return &out, nil
}

// do executes one round trip: marshal body, send, check status, decode.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
