package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// InterviewEventData captures one interview run lifecycle event.
type InterviewEventData struct {
	SessionID     string
	InterviewID   string
	JobRole       string
	Action        string // start, complete, or expire
	Mode          string // practice or scheduled
	QuestionCount int
	AnsweredCount int
	FinalScore    int
	DurationSecs  int
}

// InterviewEventRecord is a stored interview run event.
type InterviewEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	InterviewEventData
}

// AnswerEventData captures one scored answer within a run.
type AnswerEventData struct {
	SessionID    string
	QuestionID   string
	QuestionText string
	AnswerText   string
	Score        int
	Feedback     string
	TimeMs       int64
	Evaluator    string
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// EvaluationEventData captures one scoring call for cost tracking.
type EvaluationEventData struct {
	Evaluator    string
	QuestionID   string
	Score        int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EvaluatorStats aggregates evaluation calls per evaluator.
type EvaluatorStats struct {
	Evaluator string
	Calls     int
	Failures  int
	AvgScore  float64
}

// EventRepo provides append and query access to the local history.
type EventRepo interface {
	// AppendInterviewEvent records an interview run lifecycle event.
	AppendInterviewEvent(ctx context.Context, data InterviewEventData) error

	// AppendAnswerEvent records a scored answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendEvaluation records a scoring call.
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error

	// QueryInterviewEvents returns run events, newest first.
	QueryInterviewEvents(ctx context.Context, opts QueryOpts) ([]InterviewEventRecord, error)

	// AnswersBySession returns the scored answers of one run in the
	// order they were recorded.
	AnswersBySession(ctx context.Context, sessionID string) ([]AnswerEventRecord, error)

	// EvaluationStats aggregates scoring calls per evaluator.
	EvaluationStats(ctx context.Context) ([]EvaluatorStats, error)
}
