package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationEvent records every scoring call for cost tracking and debugging.
type EvaluationEvent struct {
	ent.Schema
}

func (EvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("evaluator").
			Comment("Evaluator name: remote, local, openai, anthropic, gemini"),
		field.String("question_id").
			Default("").
			Comment("Question whose answer was scored"),
		field.Int("score").
			Default(0).
			Comment("Returned score, 0 on failure"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
		field.Bool("success").
			Comment("Whether the call succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (EvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("evaluator"),
		index.Fields("success"),
	}
}
