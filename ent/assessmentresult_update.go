// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/topocapital/suitability/ent/assessmentresult"
	"github.com/topocapital/suitability/ent/predicate"
)

// AssessmentResultUpdate is the builder for updating AssessmentResult entities.
type AssessmentResultUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentResultMutation
}

// Where appends a list predicates to the AssessmentResultUpdate builder.
func (_u *AssessmentResultUpdate) Where(ps ...predicate.AssessmentResult) *AssessmentResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentResultUpdate) SetSessionID(v string) *AssessmentResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableSessionID(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *AssessmentResultUpdate) SetProfile(v string) *AssessmentResultUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableProfile(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentResultUpdate) SetScore(v float64) *AssessmentResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableScore(v *float64) *AssessmentResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentResultUpdate) AddScore(v float64) *AssessmentResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *AssessmentResultUpdate) SetMaxScore(v float64) *AssessmentResultUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableMaxScore(v *float64) *AssessmentResultUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *AssessmentResultUpdate) AddMaxScore(v float64) *AssessmentResultUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetNormalized sets the "normalized" field.
func (_u *AssessmentResultUpdate) SetNormalized(v float64) *AssessmentResultUpdate {
	_u.mutation.ResetNormalized()
	_u.mutation.SetNormalized(v)
	return _u
}

// SetNillableNormalized sets the "normalized" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableNormalized(v *float64) *AssessmentResultUpdate {
	if v != nil {
		_u.SetNormalized(*v)
	}
	return _u
}

// AddNormalized adds value to the "normalized" field.
func (_u *AssessmentResultUpdate) AddNormalized(v float64) *AssessmentResultUpdate {
	_u.mutation.AddNormalized(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *AssessmentResultUpdate) SetAnswered(v int) *AssessmentResultUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableAnswered(v *int) *AssessmentResultUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *AssessmentResultUpdate) AddAnswered(v int) *AssessmentResultUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *AssessmentResultUpdate) SetTotal(v int) *AssessmentResultUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableTotal(v *int) *AssessmentResultUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AssessmentResultUpdate) AddTotal(v int) *AssessmentResultUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentResultUpdate) SetDurationSecs(v int) *AssessmentResultUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableDurationSecs(v *int) *AssessmentResultUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentResultUpdate) AddDurationSecs(v int) *AssessmentResultUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_u *AssessmentResultUpdate) Mutation() *AssessmentResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResultUpdate) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := assessmentresult.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.profile": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresult.Table, assessmentresult.Columns, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(assessmentresult.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(assessmentresult.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(assessmentresult.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Normalized(); ok {
		_spec.SetField(assessmentresult.FieldNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNormalized(); ok {
		_spec.AddField(assessmentresult.FieldNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(assessmentresult.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(assessmentresult.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(assessmentresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(assessmentresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentResultUpdateOne is the builder for updating a single AssessmentResult entity.
type AssessmentResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentResultMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentResultUpdateOne) SetSessionID(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableSessionID(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *AssessmentResultUpdateOne) SetProfile(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableProfile(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentResultUpdateOne) SetScore(v float64) *AssessmentResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableScore(v *float64) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentResultUpdateOne) AddScore(v float64) *AssessmentResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *AssessmentResultUpdateOne) SetMaxScore(v float64) *AssessmentResultUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableMaxScore(v *float64) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *AssessmentResultUpdateOne) AddMaxScore(v float64) *AssessmentResultUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetNormalized sets the "normalized" field.
func (_u *AssessmentResultUpdateOne) SetNormalized(v float64) *AssessmentResultUpdateOne {
	_u.mutation.ResetNormalized()
	_u.mutation.SetNormalized(v)
	return _u
}

// SetNillableNormalized sets the "normalized" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableNormalized(v *float64) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetNormalized(*v)
	}
	return _u
}

// AddNormalized adds value to the "normalized" field.
func (_u *AssessmentResultUpdateOne) AddNormalized(v float64) *AssessmentResultUpdateOne {
	_u.mutation.AddNormalized(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *AssessmentResultUpdateOne) SetAnswered(v int) *AssessmentResultUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableAnswered(v *int) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *AssessmentResultUpdateOne) AddAnswered(v int) *AssessmentResultUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *AssessmentResultUpdateOne) SetTotal(v int) *AssessmentResultUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableTotal(v *int) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AssessmentResultUpdateOne) AddTotal(v int) *AssessmentResultUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentResultUpdateOne) SetDurationSecs(v int) *AssessmentResultUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableDurationSecs(v *int) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentResultUpdateOne) AddDurationSecs(v int) *AssessmentResultUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_u *AssessmentResultUpdateOne) Mutation() *AssessmentResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentResultUpdate builder.
func (_u *AssessmentResultUpdateOne) Where(ps ...predicate.AssessmentResult) *AssessmentResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentResultUpdateOne) Select(field string, fields ...string) *AssessmentResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentResult entity.
func (_u *AssessmentResultUpdateOne) Save(ctx context.Context) (*AssessmentResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResultUpdateOne) SaveX(ctx context.Context) *AssessmentResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResultUpdateOne) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := assessmentresult.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.profile": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResultUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresult.Table, assessmentresult.Columns, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentresult.FieldID)
		for _, f := range fields {
			if !assessmentresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentresult.FieldID {
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
		_spec.SetField(assessmentresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(assessmentresult.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(assessmentresult.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(assessmentresult.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Normalized(); ok {
		_spec.SetField(assessmentresult.FieldNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNormalized(); ok {
		_spec.AddField(assessmentresult.FieldNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(assessmentresult.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(assessmentresult.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(assessmentresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(assessmentresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &AssessmentResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
