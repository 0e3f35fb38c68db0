// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docfold/docfold/ent/predicate"
	"github.com/docfold/docfold/ent/prompt"
)

// PromptUpdate is the builder for updating Prompt entities.
type PromptUpdate struct {
	config
	hooks    []Hook
	mutation *PromptMutation
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdate) Where(ps ...predicate.Prompt) *PromptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPromptType sets the "prompt_type" field.
func (_u *PromptUpdate) SetPromptType(v prompt.PromptType) *PromptUpdate {
	_u.mutation.SetPromptType(v)
	return _u
}

// SetNillablePromptType sets the "prompt_type" field if the given value is not nil.
func (_u *PromptUpdate) SetNillablePromptType(v *prompt.PromptType) *PromptUpdate {
	if v != nil {
		_u.SetPromptType(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *PromptUpdate) SetDocumentType(v string) *PromptUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableDocumentType(v *string) *PromptUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *PromptUpdate) ClearDocumentType() *PromptUpdate {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptUpdate) SetVersion(v int) *PromptUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableVersion(v *int) *PromptUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PromptUpdate) AddVersion(v int) *PromptUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *PromptUpdate) SetPromptText(v string) *PromptUpdate {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *PromptUpdate) SetNillablePromptText(v *string) *PromptUpdate {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *PromptUpdate) SetPerformanceScore(v float64) *PromptUpdate {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *PromptUpdate) SetNillablePerformanceScore(v *float64) *PromptUpdate {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *PromptUpdate) AddPerformanceScore(v float64) *PromptUpdate {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// ClearPerformanceScore clears the value of the "performance_score" field.
func (_u *PromptUpdate) ClearPerformanceScore() *PromptUpdate {
	_u.mutation.ClearPerformanceScore()
	return _u
}

// SetCanEvolve sets the "can_evolve" field.
func (_u *PromptUpdate) SetCanEvolve(v bool) *PromptUpdate {
	_u.mutation.SetCanEvolve(v)
	return _u
}

// SetNillableCanEvolve sets the "can_evolve" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableCanEvolve(v *bool) *PromptUpdate {
	if v != nil {
		_u.SetCanEvolve(*v)
	}
	return _u
}

// SetScoreCeiling sets the "score_ceiling" field.
func (_u *PromptUpdate) SetScoreCeiling(v float64) *PromptUpdate {
	_u.mutation.ResetScoreCeiling()
	_u.mutation.SetScoreCeiling(v)
	return _u
}

// SetNillableScoreCeiling sets the "score_ceiling" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableScoreCeiling(v *float64) *PromptUpdate {
	if v != nil {
		_u.SetScoreCeiling(*v)
	}
	return _u
}

// AddScoreCeiling adds value to the "score_ceiling" field.
func (_u *PromptUpdate) AddScoreCeiling(v float64) *PromptUpdate {
	_u.mutation.AddScoreCeiling(v)
	return _u
}

// ClearScoreCeiling clears the value of the "score_ceiling" field.
func (_u *PromptUpdate) ClearScoreCeiling() *PromptUpdate {
	_u.mutation.ClearScoreCeiling()
	return _u
}

// SetRegeneratesOnUpdate sets the "regenerates_on_update" field.
func (_u *PromptUpdate) SetRegeneratesOnUpdate(v bool) *PromptUpdate {
	_u.mutation.SetRegeneratesOnUpdate(v)
	return _u
}

// SetNillableRegeneratesOnUpdate sets the "regenerates_on_update" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableRegeneratesOnUpdate(v *bool) *PromptUpdate {
	if v != nil {
		_u.SetRegeneratesOnUpdate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptUpdate) SetIsActive(v bool) *PromptUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableIsActive(v *bool) *PromptUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdate) SetUpdatedAt(v time.Time) *PromptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdate) Mutation() *PromptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUpdate) check() error {
	if v, ok := _u.mutation.PromptType(); ok {
		if err := prompt.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "Prompt.prompt_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PromptType(); ok {
		_spec.SetField(prompt.FieldPromptType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(prompt.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(prompt.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(prompt.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(prompt.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(prompt.FieldPromptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(prompt.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(prompt.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.PerformanceScoreCleared() {
		_spec.ClearField(prompt.FieldPerformanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CanEvolve(); ok {
		_spec.SetField(prompt.FieldCanEvolve, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScoreCeiling(); ok {
		_spec.SetField(prompt.FieldScoreCeiling, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreCeiling(); ok {
		_spec.AddField(prompt.FieldScoreCeiling, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCeilingCleared() {
		_spec.ClearField(prompt.FieldScoreCeiling, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RegeneratesOnUpdate(); ok {
		_spec.SetField(prompt.FieldRegeneratesOnUpdate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptUpdateOne is the builder for updating a single Prompt entity.
type PromptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptMutation
}

// SetPromptType sets the "prompt_type" field.
func (_u *PromptUpdateOne) SetPromptType(v prompt.PromptType) *PromptUpdateOne {
	_u.mutation.SetPromptType(v)
	return _u
}

// SetNillablePromptType sets the "prompt_type" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillablePromptType(v *prompt.PromptType) *PromptUpdateOne {
	if v != nil {
		_u.SetPromptType(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *PromptUpdateOne) SetDocumentType(v string) *PromptUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableDocumentType(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *PromptUpdateOne) ClearDocumentType() *PromptUpdateOne {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptUpdateOne) SetVersion(v int) *PromptUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableVersion(v *int) *PromptUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PromptUpdateOne) AddVersion(v int) *PromptUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *PromptUpdateOne) SetPromptText(v string) *PromptUpdateOne {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillablePromptText(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *PromptUpdateOne) SetPerformanceScore(v float64) *PromptUpdateOne {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillablePerformanceScore(v *float64) *PromptUpdateOne {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *PromptUpdateOne) AddPerformanceScore(v float64) *PromptUpdateOne {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// ClearPerformanceScore clears the value of the "performance_score" field.
func (_u *PromptUpdateOne) ClearPerformanceScore() *PromptUpdateOne {
	_u.mutation.ClearPerformanceScore()
	return _u
}

// SetCanEvolve sets the "can_evolve" field.
func (_u *PromptUpdateOne) SetCanEvolve(v bool) *PromptUpdateOne {
	_u.mutation.SetCanEvolve(v)
	return _u
}

// SetNillableCanEvolve sets the "can_evolve" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableCanEvolve(v *bool) *PromptUpdateOne {
	if v != nil {
		_u.SetCanEvolve(*v)
	}
	return _u
}

// SetScoreCeiling sets the "score_ceiling" field.
func (_u *PromptUpdateOne) SetScoreCeiling(v float64) *PromptUpdateOne {
	_u.mutation.ResetScoreCeiling()
	_u.mutation.SetScoreCeiling(v)
	return _u
}

// SetNillableScoreCeiling sets the "score_ceiling" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableScoreCeiling(v *float64) *PromptUpdateOne {
	if v != nil {
		_u.SetScoreCeiling(*v)
	}
	return _u
}

// AddScoreCeiling adds value to the "score_ceiling" field.
func (_u *PromptUpdateOne) AddScoreCeiling(v float64) *PromptUpdateOne {
	_u.mutation.AddScoreCeiling(v)
	return _u
}

// ClearScoreCeiling clears the value of the "score_ceiling" field.
func (_u *PromptUpdateOne) ClearScoreCeiling() *PromptUpdateOne {
	_u.mutation.ClearScoreCeiling()
	return _u
}

// SetRegeneratesOnUpdate sets the "regenerates_on_update" field.
func (_u *PromptUpdateOne) SetRegeneratesOnUpdate(v bool) *PromptUpdateOne {
	_u.mutation.SetRegeneratesOnUpdate(v)
	return _u
}

// SetNillableRegeneratesOnUpdate sets the "regenerates_on_update" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableRegeneratesOnUpdate(v *bool) *PromptUpdateOne {
	if v != nil {
		_u.SetRegeneratesOnUpdate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptUpdateOne) SetIsActive(v bool) *PromptUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableIsActive(v *bool) *PromptUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdateOne) SetUpdatedAt(v time.Time) *PromptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdateOne) Mutation() *PromptMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdateOne) Where(ps ...predicate.Prompt) *PromptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptUpdateOne) Select(field string, fields ...string) *PromptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prompt entity.
func (_u *PromptUpdateOne) Save(ctx context.Context) (*Prompt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdateOne) SaveX(ctx context.Context) *Prompt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUpdateOne) check() error {
	if v, ok := _u.mutation.PromptType(); ok {
		if err := prompt.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "Prompt.prompt_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptUpdateOne) sqlSave(ctx context.Context) (_node *Prompt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prompt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prompt.FieldID)
		for _, f := range fields {
			if !prompt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prompt.FieldID {
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
	if value, ok := _u.mutation.PromptType(); ok {
		_spec.SetField(prompt.FieldPromptType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(prompt.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(prompt.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(prompt.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(prompt.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(prompt.FieldPromptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(prompt.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(prompt.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.PerformanceScoreCleared() {
		_spec.ClearField(prompt.FieldPerformanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CanEvolve(); ok {
		_spec.SetField(prompt.FieldCanEvolve, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScoreCeiling(); ok {
		_spec.SetField(prompt.FieldScoreCeiling, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreCeiling(); ok {
		_spec.AddField(prompt.FieldScoreCeiling, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCeilingCleared() {
		_spec.ClearField(prompt.FieldScoreCeiling, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RegeneratesOnUpdate(); ok {
		_spec.SetField(prompt.FieldRegeneratesOnUpdate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Prompt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
