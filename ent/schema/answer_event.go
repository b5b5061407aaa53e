package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single scored answer within an interview run.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to InterviewEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Question this answer was for"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("answer_text").
			NotEmpty().
			Comment("What the candidate entered"),
		field.Int("score").
			Comment("Evaluator score, 0-100"),
		field.String("feedback").
			Default("").
			Comment("Evaluator feedback line"),
		field.Int64("time_ms").
			Default(0).
			Comment("Milliseconds spent on the question"),
		field.String("evaluator").
			NotEmpty().
			Comment("Which evaluator scored it: remote, local, openai, anthropic, gemini"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}
