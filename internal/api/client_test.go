package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestCreateCandidate(t *testing.T) {
	var gotBody CandidateInput
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/candidates/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(Profile{ID: "cand-1", Name: gotBody.Name})
	})

	p, err := c.CreateCandidate(context.Background(), CandidateInput{
		Name:    "A. Candidate",
		JobRole: "Software Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "cand-1", p.ID)
	assert.Equal(t, "A. Candidate", gotBody.Name)
	assert.Equal(t, "Software Engineer", gotBody.JobRole)
}

func TestCreateExpert(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/experts/", r.URL.Path)
		var in ExpertInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, 7, in.Seniority)
		_ = json.NewEncoder(w).Encode(Profile{ID: "exp-1", Name: in.Name, Expertise: in.Expertise})
	})

	p, err := c.CreateExpert(context.Background(), ExpertInput{
		Name:      "E. Xpert",
		Expertise: "Signal Processing",
		Seniority: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "exp-1", p.ID)
	assert.Equal(t, "Signal Processing", p.Expertise)
}

func TestCreateInterview(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/interview/", r.URL.Path)
		var in InterviewInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(Interview{
			ID:          "int-1",
			CandidateID: in.CandidateID,
			JobRole:     in.JobRole,
			Time:        in.Time,
		})
	})

	iv, err := c.CreateInterview(context.Background(), InterviewInput{
		CandidateID: "cand-1",
		JobRole:     "Data Scientist",
		Time:        "2026-09-01T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "int-1", iv.ID)
	assert.Nil(t, iv.Score)
}

func TestInterviewsByCandidate(t *testing.T) {
	score := 85
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/interview/candidate/cand-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Interview{
			{ID: "int-1", CandidateID: "cand-1", JobRole: "Software Engineer", Score: &score},
			{ID: "int-2", CandidateID: "cand-1", JobRole: "Data Scientist"},
		})
	})

	list, err := c.InterviewsByCandidate(context.Background(), "cand-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].Score)
	assert.Equal(t, 85, *list[0].Score)
	assert.Nil(t, list[1].Score)
}

func TestFinalizeInterview(t *testing.T) {
	score := 78
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/interview/submit/int-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Interview{ID: "int-1", Score: &score})
	})

	iv, err := c.FinalizeInterview(context.Background(), "int-1")
	require.NoError(t, err)
	require.NotNil(t, iv.Score)
	assert.Equal(t, 78, *iv.Score)
}

func TestAssignmentsByExpert(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/assignments/expert/exp-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Assignment{
			{ID: "as-1", CandidateID: "cand-1", ExpertID: "exp-1", Session: "int-1", Priority: 2},
		})
	})

	list, err := c.AssignmentsByExpert(context.Background(), "exp-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "int-1", list[0].Session)
	assert.Equal(t, 2, list[0].Priority)
}

func TestQuestionsAndAnswers(t *testing.T) {
	relevance := 91
	answerScore := 88
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/questions/session/int-1":
			_ = json.NewEncoder(w).Encode([]Question{
				{ID: "q-1", QuestionText: "Explain DSP.", SessionID: "int-1", RelevanceScore: &relevance},
			})
		case "/questions/submit":
			var in QuestionInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			_ = json.NewEncoder(w).Encode(Question{
				ID:           "q-2",
				QuestionText: in.QuestionText,
				ExpertID:     in.ExpertID,
				SessionID:    in.SessionID,
			})
		case "/answers/submit":
			var in AnswerInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			_ = json.NewEncoder(w).Encode(Answer{
				ID:         "a-1",
				QuestionID: in.QuestionID,
				AnswerText: in.AnswerText,
				Score:      &answerScore,
			})
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()

	qs, err := c.QuestionsBySession(ctx, "int-1")
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, 91, *qs[0].RelevanceScore)

	q, err := c.SubmitQuestion(ctx, QuestionInput{
		QuestionText: "Describe RTOS scheduling.",
		ExpertID:     "exp-1",
		SessionID:    "int-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "q-2", q.ID)

	a, err := c.SubmitAnswer(ctx, AnswerInput{
		CandidateID: "cand-1",
		QuestionID:  "q-1",
		AnswerText:  "A detailed answer.",
	})
	require.NoError(t, err)
	require.NotNil(t, a.Score)
	assert.Equal(t, 88, *a.Score)
}

func TestStatusError(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.CreateInterview(context.Background(), InterviewInput{CandidateID: "cand-1"})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "/interview/", statusErr.Path)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/interview/int-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Interview{ID: "int-1"})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL + "/")
	iv, err := c.Interview(context.Background(), "int-1")
	require.NoError(t, err)
	assert.Equal(t, "int-1", iv.ID)
}
