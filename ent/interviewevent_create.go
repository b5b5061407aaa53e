// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talentmatch/talentmatch/ent/interviewevent"
)

// InterviewEventCreate is the builder for creating a InterviewEvent entity.
type InterviewEventCreate struct {
	config
	mutation *InterviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InterviewEventCreate) SetSequence(v int64) *InterviewEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InterviewEventCreate) SetTimestamp(v time.Time) *InterviewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableTimestamp(v *time.Time) *InterviewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InterviewEventCreate) SetSessionID(v string) *InterviewEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetInterviewID sets the "interview_id" field.
func (_c *InterviewEventCreate) SetInterviewID(v string) *InterviewEventCreate {
	_c.mutation.SetInterviewID(v)
	return _c
}

// SetNillableInterviewID sets the "interview_id" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableInterviewID(v *string) *InterviewEventCreate {
	if v != nil {
		_c.SetInterviewID(*v)
	}
	return _c
}

// SetJobRole sets the "job_role" field.
func (_c *InterviewEventCreate) SetJobRole(v string) *InterviewEventCreate {
	_c.mutation.SetJobRole(v)
	return _c
}

// SetNillableJobRole sets the "job_role" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableJobRole(v *string) *InterviewEventCreate {
	if v != nil {
		_c.SetJobRole(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *InterviewEventCreate) SetAction(v string) *InterviewEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *InterviewEventCreate) SetMode(v string) *InterviewEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *InterviewEventCreate) SetQuestionCount(v int) *InterviewEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableQuestionCount(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetAnsweredCount sets the "answered_count" field.
func (_c *InterviewEventCreate) SetAnsweredCount(v int) *InterviewEventCreate {
	_c.mutation.SetAnsweredCount(v)
	return _c
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableAnsweredCount(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetAnsweredCount(*v)
	}
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *InterviewEventCreate) SetFinalScore(v int) *InterviewEventCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableFinalScore(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetFinalScore(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *InterviewEventCreate) SetDurationSecs(v int) *InterviewEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableDurationSecs(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_c *InterviewEventCreate) Mutation() *InterviewEventMutation {
	return _c.mutation
}

// Save creates the InterviewEvent in the database.
func (_c *InterviewEventCreate) Save(ctx context.Context) (*InterviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewEventCreate) SaveX(ctx context.Context) *InterviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interviewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.InterviewID(); !ok {
		v := interviewevent.DefaultInterviewID
		_c.mutation.SetInterviewID(v)
	}
	if _, ok := _c.mutation.JobRole(); !ok {
		v := interviewevent.DefaultJobRole
		_c.mutation.SetJobRole(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := interviewevent.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.AnsweredCount(); !ok {
		v := interviewevent.DefaultAnsweredCount
		_c.mutation.SetAnsweredCount(v)
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		v := interviewevent.DefaultFinalScore
		_c.mutation.SetFinalScore(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := interviewevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InterviewEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InterviewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InterviewEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InterviewID(); !ok {
		return &ValidationError{Name: "interview_id", err: errors.New(`ent: missing required field "InterviewEvent.interview_id"`)}
	}
	if _, ok := _c.mutation.JobRole(); !ok {
		return &ValidationError{Name: "job_role", err: errors.New(`ent: missing required field "InterviewEvent.job_role"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "InterviewEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := interviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "InterviewEvent.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := interviewevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "InterviewEvent.question_count"`)}
	}
	if _, ok := _c.mutation.AnsweredCount(); !ok {
		return &ValidationError{Name: "answered_count", err: errors.New(`ent: missing required field "InterviewEvent.answered_count"`)}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "InterviewEvent.final_score"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "InterviewEvent.duration_secs"`)}
	}
	return nil
}

func (_c *InterviewEventCreate) sqlSave(ctx context.Context) (*InterviewEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewEventCreate) createSpec() (*InterviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewevent.Table, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.InterviewID(); ok {
		_spec.SetField(interviewevent.FieldInterviewID, field.TypeString, value)
		_node.InterviewID = value
	}
	if value, ok := _c.mutation.JobRole(); ok {
		_spec.SetField(interviewevent.FieldJobRole, field.TypeString, value)
		_node.JobRole = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(interviewevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(interviewevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(interviewevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.AnsweredCount(); ok {
		_spec.SetField(interviewevent.FieldAnsweredCount, field.TypeInt, value)
		_node.AnsweredCount = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(interviewevent.FieldFinalScore, field.TypeInt, value)
		_node.FinalScore = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(interviewevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// InterviewEventCreateBulk is the builder for creating many InterviewEvent entities in bulk.
type InterviewEventCreateBulk struct {
	config
	err      error
	builders []*InterviewEventCreate
}

// Save creates the InterviewEvent entities in the database.
func (_c *InterviewEventCreateBulk) Save(ctx context.Context) ([]*InterviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterviewEventCreateBulk) SaveX(ctx context.Context) []*InterviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
