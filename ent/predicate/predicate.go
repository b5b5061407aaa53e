// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// EvaluationEvent is the predicate function for evaluationevent builders.
type EvaluationEvent func(*sql.Selector)

// InterviewEvent is the predicate function for interviewevent builders.
type InterviewEvent func(*sql.Selector)
