// Code generated by ent, DO NOT EDIT.

package evaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/talentmatch/talentmatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Evaluator applies equality check predicate on the "evaluator" field. It's identical to EvaluatorEQ.
func Evaluator(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldEvaluator, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldScore, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EvaluatorEQ applies the EQ predicate on the "evaluator" field.
func EvaluatorEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldEvaluator, v))
}

// EvaluatorNEQ applies the NEQ predicate on the "evaluator" field.
func EvaluatorNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldEvaluator, v))
}

// EvaluatorIn applies the In predicate on the "evaluator" field.
func EvaluatorIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldEvaluator, vs...))
}

// EvaluatorNotIn applies the NotIn predicate on the "evaluator" field.
func EvaluatorNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldEvaluator, vs...))
}

// EvaluatorGT applies the GT predicate on the "evaluator" field.
func EvaluatorGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldEvaluator, v))
}

// EvaluatorGTE applies the GTE predicate on the "evaluator" field.
func EvaluatorGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldEvaluator, v))
}

// EvaluatorLT applies the LT predicate on the "evaluator" field.
func EvaluatorLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldEvaluator, v))
}

// EvaluatorLTE applies the LTE predicate on the "evaluator" field.
func EvaluatorLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldEvaluator, v))
}

// EvaluatorContains applies the Contains predicate on the "evaluator" field.
func EvaluatorContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldEvaluator, v))
}

// EvaluatorHasPrefix applies the HasPrefix predicate on the "evaluator" field.
func EvaluatorHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldEvaluator, v))
}

// EvaluatorHasSuffix applies the HasSuffix predicate on the "evaluator" field.
func EvaluatorHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldEvaluator, v))
}

// EvaluatorEqualFold applies the EqualFold predicate on the "evaluator" field.
func EvaluatorEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldEvaluator, v))
}

// EvaluatorContainsFold applies the ContainsFold predicate on the "evaluator" field.
func EvaluatorContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldEvaluator, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldScore, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.NotPredicates(p))
}
