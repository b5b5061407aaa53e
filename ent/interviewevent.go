// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talentmatch/talentmatch/ent/interviewevent"
)

// InterviewEvent is the model entity for the InterviewEvent schema.
type InterviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in one interview run
	SessionID string `json:"session_id,omitempty"`
	// Backend interview ID; empty for practice runs
	InterviewID string `json:"interview_id,omitempty"`
	// Role under assessment
	JobRole string `json:"job_role,omitempty"`
	// start, complete, or expire
	Action string `json:"action,omitempty"`
	// practice or scheduled
	Mode string `json:"mode,omitempty"`
	// Questions in the run
	QuestionCount int `json:"question_count,omitempty"`
	// Answers submitted (on complete/expire only)
	AnsweredCount int `json:"answered_count,omitempty"`
	// Rounded average score (on complete/expire only)
	FinalScore int `json:"final_score,omitempty"`
	// Actual duration in seconds (on complete/expire only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interviewevent.FieldID, interviewevent.FieldSequence, interviewevent.FieldQuestionCount, interviewevent.FieldAnsweredCount, interviewevent.FieldFinalScore, interviewevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case interviewevent.FieldSessionID, interviewevent.FieldInterviewID, interviewevent.FieldJobRole, interviewevent.FieldAction, interviewevent.FieldMode:
			values[i] = new(sql.NullString)
		case interviewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterviewEvent fields.
func (_m *InterviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interviewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interviewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interviewevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interviewevent.FieldInterviewID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interview_id", values[i])
			} else if value.Valid {
				_m.InterviewID = value.String
			}
		case interviewevent.FieldJobRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_role", values[i])
			} else if value.Valid {
				_m.JobRole = value.String
			}
		case interviewevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case interviewevent.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case interviewevent.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case interviewevent.FieldAnsweredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answered_count", values[i])
			} else if value.Valid {
				_m.AnsweredCount = int(value.Int64)
			}
		case interviewevent.FieldFinalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field final_score", values[i])
			} else if value.Valid {
				_m.FinalScore = int(value.Int64)
			}
		case interviewevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InterviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterviewEvent.
// Note that you need to call InterviewEvent.Unwrap() before calling this method if this InterviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterviewEvent) Update() *InterviewEventUpdateOne {
	return NewInterviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterviewEvent) Unwrap() *InterviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InterviewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("interview_id=")
	builder.WriteString(_m.InterviewID)
	builder.WriteString(", ")
	builder.WriteString("job_role=")
	builder.WriteString(_m.JobRole)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("answered_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnsweredCount))
	builder.WriteString(", ")
	builder.WriteString("final_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalScore))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// InterviewEvents is a parsable slice of InterviewEvent.
type InterviewEvents []*InterviewEvent
