// Code generated by ent, DO NOT EDIT.

package interviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/talentmatch/talentmatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// InterviewID applies equality check predicate on the "interview_id" field. It's identical to InterviewIDEQ.
func InterviewID(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldInterviewID, v))
}

// JobRole applies equality check predicate on the "job_role" field. It's identical to JobRoleEQ.
func JobRole(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldJobRole, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAction, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldMode, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// AnsweredCount applies equality check predicate on the "answered_count" field. It's identical to AnsweredCountEQ.
func AnsweredCount(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAnsweredCount, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldFinalScore, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// InterviewIDEQ applies the EQ predicate on the "interview_id" field.
func InterviewIDEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldInterviewID, v))
}

// InterviewIDNEQ applies the NEQ predicate on the "interview_id" field.
func InterviewIDNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldInterviewID, v))
}

// InterviewIDIn applies the In predicate on the "interview_id" field.
func InterviewIDIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldInterviewID, vs...))
}

// InterviewIDNotIn applies the NotIn predicate on the "interview_id" field.
func InterviewIDNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldInterviewID, vs...))
}

// InterviewIDGT applies the GT predicate on the "interview_id" field.
func InterviewIDGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldInterviewID, v))
}

// InterviewIDGTE applies the GTE predicate on the "interview_id" field.
func InterviewIDGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldInterviewID, v))
}

// InterviewIDLT applies the LT predicate on the "interview_id" field.
func InterviewIDLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldInterviewID, v))
}

// InterviewIDLTE applies the LTE predicate on the "interview_id" field.
func InterviewIDLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldInterviewID, v))
}

// InterviewIDContains applies the Contains predicate on the "interview_id" field.
func InterviewIDContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldInterviewID, v))
}

// InterviewIDHasPrefix applies the HasPrefix predicate on the "interview_id" field.
func InterviewIDHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldInterviewID, v))
}

// InterviewIDHasSuffix applies the HasSuffix predicate on the "interview_id" field.
func InterviewIDHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldInterviewID, v))
}

// InterviewIDEqualFold applies the EqualFold predicate on the "interview_id" field.
func InterviewIDEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldInterviewID, v))
}

// InterviewIDContainsFold applies the ContainsFold predicate on the "interview_id" field.
func InterviewIDContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldInterviewID, v))
}

// JobRoleEQ applies the EQ predicate on the "job_role" field.
func JobRoleEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldJobRole, v))
}

// JobRoleNEQ applies the NEQ predicate on the "job_role" field.
func JobRoleNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldJobRole, v))
}

// JobRoleIn applies the In predicate on the "job_role" field.
func JobRoleIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldJobRole, vs...))
}

// JobRoleNotIn applies the NotIn predicate on the "job_role" field.
func JobRoleNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldJobRole, vs...))
}

// JobRoleGT applies the GT predicate on the "job_role" field.
func JobRoleGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldJobRole, v))
}

// JobRoleGTE applies the GTE predicate on the "job_role" field.
func JobRoleGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldJobRole, v))
}

// JobRoleLT applies the LT predicate on the "job_role" field.
func JobRoleLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldJobRole, v))
}

// JobRoleLTE applies the LTE predicate on the "job_role" field.
func JobRoleLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldJobRole, v))
}

// JobRoleContains applies the Contains predicate on the "job_role" field.
func JobRoleContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldJobRole, v))
}

// JobRoleHasPrefix applies the HasPrefix predicate on the "job_role" field.
func JobRoleHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldJobRole, v))
}

// JobRoleHasSuffix applies the HasSuffix predicate on the "job_role" field.
func JobRoleHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldJobRole, v))
}

// JobRoleEqualFold applies the EqualFold predicate on the "job_role" field.
func JobRoleEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldJobRole, v))
}

// JobRoleContainsFold applies the ContainsFold predicate on the "job_role" field.
func JobRoleContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldJobRole, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldAction, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldMode, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldQuestionCount, v))
}

// AnsweredCountEQ applies the EQ predicate on the "answered_count" field.
func AnsweredCountEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAnsweredCount, v))
}

// AnsweredCountNEQ applies the NEQ predicate on the "answered_count" field.
func AnsweredCountNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldAnsweredCount, v))
}

// AnsweredCountIn applies the In predicate on the "answered_count" field.
func AnsweredCountIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldAnsweredCount, vs...))
}

// AnsweredCountNotIn applies the NotIn predicate on the "answered_count" field.
func AnsweredCountNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldAnsweredCount, vs...))
}

// AnsweredCountGT applies the GT predicate on the "answered_count" field.
func AnsweredCountGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldAnsweredCount, v))
}

// AnsweredCountGTE applies the GTE predicate on the "answered_count" field.
func AnsweredCountGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldAnsweredCount, v))
}

// AnsweredCountLT applies the LT predicate on the "answered_count" field.
func AnsweredCountLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldAnsweredCount, v))
}

// AnsweredCountLTE applies the LTE predicate on the "answered_count" field.
func AnsweredCountLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldAnsweredCount, v))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldFinalScore, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.NotPredicates(p))
}
