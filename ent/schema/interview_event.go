package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewEvent records interview run lifecycle events (start/complete/expire).
type InterviewEvent struct {
	ent.Schema
}

func (InterviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InterviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in one interview run"),
		field.String("interview_id").
			Default("").
			Comment("Backend interview ID; empty for practice runs"),
		field.String("job_role").
			Default("").
			Comment("Role under assessment"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or expire"),
		field.String("mode").
			NotEmpty().
			Comment("practice or scheduled"),
		field.Int("question_count").
			Default(0).
			Comment("Questions in the run"),
		field.Int("answered_count").
			Default(0).
			Comment("Answers submitted (on complete/expire only)"),
		field.Int("final_score").
			Default(0).
			Comment("Rounded average score (on complete/expire only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on complete/expire only)"),
	}
}

func (InterviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("mode"),
	}
}
