// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talentmatch/talentmatch/ent/evaluationevent"
)

// EvaluationEventCreate is the builder for creating a EvaluationEvent entity.
type EvaluationEventCreate struct {
	config
	mutation *EvaluationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EvaluationEventCreate) SetSequence(v int64) *EvaluationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvaluationEventCreate) SetTimestamp(v time.Time) *EvaluationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTimestamp(v *time.Time) *EvaluationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEvaluator sets the "evaluator" field.
func (_c *EvaluationEventCreate) SetEvaluator(v string) *EvaluationEventCreate {
	_c.mutation.SetEvaluator(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *EvaluationEventCreate) SetQuestionID(v string) *EvaluationEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableQuestionID(v *string) *EvaluationEventCreate {
	if v != nil {
		_c.SetQuestionID(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *EvaluationEventCreate) SetScore(v int) *EvaluationEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableScore(v *int) *EvaluationEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *EvaluationEventCreate) SetLatencyMs(v int64) *EvaluationEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableLatencyMs(v *int64) *EvaluationEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *EvaluationEventCreate) SetSuccess(v bool) *EvaluationEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EvaluationEventCreate) SetErrorMessage(v string) *EvaluationEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableErrorMessage(v *string) *EvaluationEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_c *EvaluationEventCreate) Mutation() *EvaluationEventMutation {
	return _c.mutation
}

// Save creates the EvaluationEvent in the database.
func (_c *EvaluationEventCreate) Save(ctx context.Context) (*EvaluationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationEventCreate) SaveX(ctx context.Context) *EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evaluationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		v := evaluationevent.DefaultQuestionID
		_c.mutation.SetQuestionID(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := evaluationevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := evaluationevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := evaluationevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvaluationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvaluationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Evaluator(); !ok {
		return &ValidationError{Name: "evaluator", err: errors.New(`ent: missing required field "EvaluationEvent.evaluator"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "EvaluationEvent.question_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "EvaluationEvent.score"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "EvaluationEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "EvaluationEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "EvaluationEvent.error_message"`)}
	}
	return nil
}

func (_c *EvaluationEventCreate) sqlSave(ctx context.Context) (*EvaluationEvent, error) {
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

func (_c *EvaluationEventCreate) createSpec() (*EvaluationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationevent.Table, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evaluationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evaluationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Evaluator(); ok {
		_spec.SetField(evaluationevent.FieldEvaluator, field.TypeString, value)
		_node.Evaluator = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(evaluationevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(evaluationevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(evaluationevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(evaluationevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluationevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// EvaluationEventCreateBulk is the builder for creating many EvaluationEvent entities in bulk.
type EvaluationEventCreateBulk struct {
	config
	err      error
	builders []*EvaluationEventCreate
}

// Save creates the EvaluationEvent entities in the database.
func (_c *EvaluationEventCreateBulk) Save(ctx context.Context) ([]*EvaluationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationEventMutation)
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
func (_c *EvaluationEventCreateBulk) SaveX(ctx context.Context) []*EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
