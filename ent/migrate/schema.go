// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "answer_text", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "feedback", Type: field.TypeString, Default: ""},
		{Name: "time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "evaluator", Type: field.TypeString},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
		},
	}
	// EvaluationEventsColumns holds the columns for the "evaluation_events" table.
	EvaluationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "evaluator", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// EvaluationEventsTable holds the schema information for the "evaluation_events" table.
	EvaluationEventsTable = &schema.Table{
		Name:       "evaluation_events",
		Columns:    EvaluationEventsColumns,
		PrimaryKey: []*schema.Column{EvaluationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[1]},
			},
			{
				Name:    "evaluationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[2]},
			},
			{
				Name:    "evaluationevent_evaluator",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[3]},
			},
			{
				Name:    "evaluationevent_success",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[7]},
			},
		},
	}
	// InterviewEventsColumns holds the columns for the "interview_events" table.
	InterviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "interview_id", Type: field.TypeString, Default: ""},
		{Name: "job_role", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "answered_count", Type: field.TypeInt, Default: 0},
		{Name: "final_score", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// InterviewEventsTable holds the schema information for the "interview_events" table.
	InterviewEventsTable = &schema.Table{
		Name:       "interview_events",
		Columns:    InterviewEventsColumns,
		PrimaryKey: []*schema.Column{InterviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InterviewEventsColumns[1]},
			},
			{
				Name:    "interviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InterviewEventsColumns[2]},
			},
			{
				Name:    "interviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewEventsColumns[3]},
			},
			{
				Name:    "interviewevent_action",
				Unique:  false,
				Columns: []*schema.Column{InterviewEventsColumns[6]},
			},
			{
				Name:    "interviewevent_mode",
				Unique:  false,
				Columns: []*schema.Column{InterviewEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		EvaluationEventsTable,
		InterviewEventsTable,
	}
)

func init() {
}
