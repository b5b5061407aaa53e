// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talentmatch/talentmatch/ent/interviewevent"
	"github.com/talentmatch/talentmatch/ent/predicate"
)

// InterviewEventUpdate is the builder for updating InterviewEvent entities.
type InterviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewEventMutation
}

// Where appends a list predicates to the InterviewEventUpdate builder.
func (_u *InterviewEventUpdate) Where(ps ...predicate.InterviewEvent) *InterviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEventUpdate) SetSessionID(v string) *InterviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableSessionID(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInterviewID sets the "interview_id" field.
func (_u *InterviewEventUpdate) SetInterviewID(v string) *InterviewEventUpdate {
	_u.mutation.SetInterviewID(v)
	return _u
}

// SetNillableInterviewID sets the "interview_id" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableInterviewID(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetInterviewID(*v)
	}
	return _u
}

// SetJobRole sets the "job_role" field.
func (_u *InterviewEventUpdate) SetJobRole(v string) *InterviewEventUpdate {
	_u.mutation.SetJobRole(v)
	return _u
}

// SetNillableJobRole sets the "job_role" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableJobRole(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetJobRole(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *InterviewEventUpdate) SetAction(v string) *InterviewEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableAction(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *InterviewEventUpdate) SetMode(v string) *InterviewEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableMode(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *InterviewEventUpdate) SetQuestionCount(v int) *InterviewEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableQuestionCount(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *InterviewEventUpdate) AddQuestionCount(v int) *InterviewEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetAnsweredCount sets the "answered_count" field.
func (_u *InterviewEventUpdate) SetAnsweredCount(v int) *InterviewEventUpdate {
	_u.mutation.ResetAnsweredCount()
	_u.mutation.SetAnsweredCount(v)
	return _u
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableAnsweredCount(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetAnsweredCount(*v)
	}
	return _u
}

// AddAnsweredCount adds value to the "answered_count" field.
func (_u *InterviewEventUpdate) AddAnsweredCount(v int) *InterviewEventUpdate {
	_u.mutation.AddAnsweredCount(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *InterviewEventUpdate) SetFinalScore(v int) *InterviewEventUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableFinalScore(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *InterviewEventUpdate) AddFinalScore(v int) *InterviewEventUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *InterviewEventUpdate) SetDurationSecs(v int) *InterviewEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableDurationSecs(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *InterviewEventUpdate) AddDurationSecs(v int) *InterviewEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_u *InterviewEventUpdate) Mutation() *InterviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := interviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := interviewevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewevent.Table, interviewevent.Columns, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InterviewID(); ok {
		_spec.SetField(interviewevent.FieldInterviewID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobRole(); ok {
		_spec.SetField(interviewevent.FieldJobRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(interviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(interviewevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(interviewevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(interviewevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnsweredCount(); ok {
		_spec.SetField(interviewevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredCount(); ok {
		_spec.AddField(interviewevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(interviewevent.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(interviewevent.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(interviewevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(interviewevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewEventUpdateOne is the builder for updating a single InterviewEvent entity.
type InterviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEventUpdateOne) SetSessionID(v string) *InterviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableSessionID(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInterviewID sets the "interview_id" field.
func (_u *InterviewEventUpdateOne) SetInterviewID(v string) *InterviewEventUpdateOne {
	_u.mutation.SetInterviewID(v)
	return _u
}

// SetNillableInterviewID sets the "interview_id" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableInterviewID(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetInterviewID(*v)
	}
	return _u
}

// SetJobRole sets the "job_role" field.
func (_u *InterviewEventUpdateOne) SetJobRole(v string) *InterviewEventUpdateOne {
	_u.mutation.SetJobRole(v)
	return _u
}

// SetNillableJobRole sets the "job_role" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableJobRole(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetJobRole(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *InterviewEventUpdateOne) SetAction(v string) *InterviewEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableAction(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *InterviewEventUpdateOne) SetMode(v string) *InterviewEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableMode(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *InterviewEventUpdateOne) SetQuestionCount(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableQuestionCount(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *InterviewEventUpdateOne) AddQuestionCount(v int) *InterviewEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetAnsweredCount sets the "answered_count" field.
func (_u *InterviewEventUpdateOne) SetAnsweredCount(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetAnsweredCount()
	_u.mutation.SetAnsweredCount(v)
	return _u
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableAnsweredCount(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetAnsweredCount(*v)
	}
	return _u
}

// AddAnsweredCount adds value to the "answered_count" field.
func (_u *InterviewEventUpdateOne) AddAnsweredCount(v int) *InterviewEventUpdateOne {
	_u.mutation.AddAnsweredCount(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *InterviewEventUpdateOne) SetFinalScore(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableFinalScore(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *InterviewEventUpdateOne) AddFinalScore(v int) *InterviewEventUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *InterviewEventUpdateOne) SetDurationSecs(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableDurationSecs(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *InterviewEventUpdateOne) AddDurationSecs(v int) *InterviewEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_u *InterviewEventUpdateOne) Mutation() *InterviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewEventUpdate builder.
func (_u *InterviewEventUpdateOne) Where(ps ...predicate.InterviewEvent) *InterviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewEventUpdateOne) Select(field string, fields ...string) *InterviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewEvent entity.
func (_u *InterviewEventUpdateOne) Save(ctx context.Context) (*InterviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEventUpdateOne) SaveX(ctx context.Context) *InterviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := interviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := interviewevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewEventUpdateOne) sqlSave(ctx context.Context) (_node *InterviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewevent.Table, interviewevent.Columns, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewevent.FieldID)
		for _, f := range fields {
			if !interviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InterviewID(); ok {
		_spec.SetField(interviewevent.FieldInterviewID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobRole(); ok {
		_spec.SetField(interviewevent.FieldJobRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(interviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(interviewevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(interviewevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(interviewevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnsweredCount(); ok {
		_spec.SetField(interviewevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredCount(); ok {
		_spec.AddField(interviewevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(interviewevent.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(interviewevent.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(interviewevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(interviewevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &InterviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
