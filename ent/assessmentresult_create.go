// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/topocapital/suitability/ent/assessmentresult"
)

// AssessmentResultCreate is the builder for creating a AssessmentResult entity.
type AssessmentResultCreate struct {
	config
	mutation *AssessmentResultMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentResultCreate) SetSequence(v int64) *AssessmentResultCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentResultCreate) SetTimestamp(v time.Time) *AssessmentResultCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentResultCreate) SetNillableTimestamp(v *time.Time) *AssessmentResultCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentResultCreate) SetSessionID(v string) *AssessmentResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetProfile sets the "profile" field.
func (_c *AssessmentResultCreate) SetProfile(v string) *AssessmentResultCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AssessmentResultCreate) SetScore(v float64) *AssessmentResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *AssessmentResultCreate) SetMaxScore(v float64) *AssessmentResultCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetNormalized sets the "normalized" field.
func (_c *AssessmentResultCreate) SetNormalized(v float64) *AssessmentResultCreate {
	_c.mutation.SetNormalized(v)
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *AssessmentResultCreate) SetAnswered(v int) *AssessmentResultCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *AssessmentResultCreate) SetTotal(v int) *AssessmentResultCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *AssessmentResultCreate) SetDurationSecs(v int) *AssessmentResultCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *AssessmentResultCreate) SetNillableDurationSecs(v *int) *AssessmentResultCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_c *AssessmentResultCreate) Mutation() *AssessmentResultMutation {
	return _c.mutation
}

// Save creates the AssessmentResult in the database.
func (_c *AssessmentResultCreate) Save(ctx context.Context) (*AssessmentResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentResultCreate) SaveX(ctx context.Context) *AssessmentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentResultCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentresult.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := assessmentresult.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentResultCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentResult.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentResult.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentResult.session_id"`)}
	}
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "AssessmentResult.profile"`)}
	}
	if v, ok := _c.mutation.Profile(); ok {
		if err := assessmentresult.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssessmentResult.score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "AssessmentResult.max_score"`)}
	}
	if _, ok := _c.mutation.Normalized(); !ok {
		return &ValidationError{Name: "normalized", err: errors.New(`ent: missing required field "AssessmentResult.normalized"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "AssessmentResult.answered"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "AssessmentResult.total"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "AssessmentResult.duration_secs"`)}
	}
	return nil
}

func (_c *AssessmentResultCreate) sqlSave(ctx context.Context) (*AssessmentResult, error) {
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

func (_c *AssessmentResultCreate) createSpec() (*AssessmentResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentresult.Table, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentresult.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentresult.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentresult.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(assessmentresult.FieldProfile, field.TypeString, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assessmentresult.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(assessmentresult.FieldMaxScore, field.TypeFloat64, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Normalized(); ok {
		_spec.SetField(assessmentresult.FieldNormalized, field.TypeFloat64, value)
		_node.Normalized = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(assessmentresult.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(assessmentresult.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// AssessmentResultCreateBulk is the builder for creating many AssessmentResult entities in bulk.
type AssessmentResultCreateBulk struct {
	config
	err      error
	builders []*AssessmentResultCreate
}

// Save creates the AssessmentResult entities in the database.
func (_c *AssessmentResultCreateBulk) Save(ctx context.Context) ([]*AssessmentResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentResultMutation)
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
func (_c *AssessmentResultCreateBulk) SaveX(ctx context.Context) []*AssessmentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
