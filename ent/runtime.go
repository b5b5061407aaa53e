// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/talentmatch/talentmatch/ent/answerevent"
	"github.com/talentmatch/talentmatch/ent/evaluationevent"
	"github.com/talentmatch/talentmatch/ent/interviewevent"
	"github.com/talentmatch/talentmatch/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[2].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescAnswerText is the schema descriptor for answer_text field.
	answereventDescAnswerText := answereventFields[3].Descriptor()
	// answerevent.AnswerTextValidator is a validator for the "answer_text" field. It is called by the builders before save.
	answerevent.AnswerTextValidator = answereventDescAnswerText.Validators[0].(func(string) error)
	// answereventDescFeedback is the schema descriptor for feedback field.
	answereventDescFeedback := answereventFields[5].Descriptor()
	// answerevent.DefaultFeedback holds the default value on creation for the feedback field.
	answerevent.DefaultFeedback = answereventDescFeedback.Default.(string)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int64)
	// answereventDescEvaluator is the schema descriptor for evaluator field.
	answereventDescEvaluator := answereventFields[7].Descriptor()
	// answerevent.EvaluatorValidator is a validator for the "evaluator" field. It is called by the builders before save.
	answerevent.EvaluatorValidator = answereventDescEvaluator.Validators[0].(func(string) error)
	evaluationeventMixin := schema.EvaluationEvent{}.Mixin()
	evaluationeventMixinFields0 := evaluationeventMixin[0].Fields()
	_ = evaluationeventMixinFields0
	evaluationeventFields := schema.EvaluationEvent{}.Fields()
	_ = evaluationeventFields
	// evaluationeventDescTimestamp is the schema descriptor for timestamp field.
	evaluationeventDescTimestamp := evaluationeventMixinFields0[1].Descriptor()
	// evaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluationevent.DefaultTimestamp = evaluationeventDescTimestamp.Default.(func() time.Time)
	// evaluationeventDescQuestionID is the schema descriptor for question_id field.
	evaluationeventDescQuestionID := evaluationeventFields[1].Descriptor()
	// evaluationevent.DefaultQuestionID holds the default value on creation for the question_id field.
	evaluationevent.DefaultQuestionID = evaluationeventDescQuestionID.Default.(string)
	// evaluationeventDescScore is the schema descriptor for score field.
	evaluationeventDescScore := evaluationeventFields[2].Descriptor()
	// evaluationevent.DefaultScore holds the default value on creation for the score field.
	evaluationevent.DefaultScore = evaluationeventDescScore.Default.(int)
	// evaluationeventDescLatencyMs is the schema descriptor for latency_ms field.
	evaluationeventDescLatencyMs := evaluationeventFields[3].Descriptor()
	// evaluationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	evaluationevent.DefaultLatencyMs = evaluationeventDescLatencyMs.Default.(int64)
	// evaluationeventDescErrorMessage is the schema descriptor for error_message field.
	evaluationeventDescErrorMessage := evaluationeventFields[5].Descriptor()
	// evaluationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	evaluationevent.DefaultErrorMessage = evaluationeventDescErrorMessage.Default.(string)
	intervieweventMixin := schema.InterviewEvent{}.Mixin()
	intervieweventMixinFields0 := intervieweventMixin[0].Fields()
	_ = intervieweventMixinFields0
	intervieweventFields := schema.InterviewEvent{}.Fields()
	_ = intervieweventFields
	// intervieweventDescTimestamp is the schema descriptor for timestamp field.
	intervieweventDescTimestamp := intervieweventMixinFields0[1].Descriptor()
	// interviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interviewevent.DefaultTimestamp = intervieweventDescTimestamp.Default.(func() time.Time)
	// intervieweventDescSessionID is the schema descriptor for session_id field.
	intervieweventDescSessionID := intervieweventFields[0].Descriptor()
	// interviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interviewevent.SessionIDValidator = intervieweventDescSessionID.Validators[0].(func(string) error)
	// intervieweventDescInterviewID is the schema descriptor for interview_id field.
	intervieweventDescInterviewID := intervieweventFields[1].Descriptor()
	// interviewevent.DefaultInterviewID holds the default value on creation for the interview_id field.
	interviewevent.DefaultInterviewID = intervieweventDescInterviewID.Default.(string)
	// intervieweventDescJobRole is the schema descriptor for job_role field.
	intervieweventDescJobRole := intervieweventFields[2].Descriptor()
	// interviewevent.DefaultJobRole holds the default value on creation for the job_role field.
	interviewevent.DefaultJobRole = intervieweventDescJobRole.Default.(string)
	// intervieweventDescAction is the schema descriptor for action field.
	intervieweventDescAction := intervieweventFields[3].Descriptor()
	// interviewevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	interviewevent.ActionValidator = intervieweventDescAction.Validators[0].(func(string) error)
	// intervieweventDescMode is the schema descriptor for mode field.
	intervieweventDescMode := intervieweventFields[4].Descriptor()
	// interviewevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	interviewevent.ModeValidator = intervieweventDescMode.Validators[0].(func(string) error)
	// intervieweventDescQuestionCount is the schema descriptor for question_count field.
	intervieweventDescQuestionCount := intervieweventFields[5].Descriptor()
	// interviewevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	interviewevent.DefaultQuestionCount = intervieweventDescQuestionCount.Default.(int)
	// intervieweventDescAnsweredCount is the schema descriptor for answered_count field.
	intervieweventDescAnsweredCount := intervieweventFields[6].Descriptor()
	// interviewevent.DefaultAnsweredCount holds the default value on creation for the answered_count field.
	interviewevent.DefaultAnsweredCount = intervieweventDescAnsweredCount.Default.(int)
	// intervieweventDescFinalScore is the schema descriptor for final_score field.
	intervieweventDescFinalScore := intervieweventFields[7].Descriptor()
	// interviewevent.DefaultFinalScore holds the default value on creation for the final_score field.
	interviewevent.DefaultFinalScore = intervieweventDescFinalScore.Default.(int)
	// intervieweventDescDurationSecs is the schema descriptor for duration_secs field.
	intervieweventDescDurationSecs := intervieweventFields[8].Descriptor()
	// interviewevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	interviewevent.DefaultDurationSecs = intervieweventDescDurationSecs.Default.(int)
}
