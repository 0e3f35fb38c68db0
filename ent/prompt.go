// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docfold/docfold/ent/prompt"
)

// Prompt is the model entity for the Prompt schema.
type Prompt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PromptType holds the value of the "prompt_type" field.
	PromptType prompt.PromptType `json:"prompt_type,omitempty"`
	// Scope; nil for the generic prompt of this type
	DocumentType *string `json:"document_type,omitempty"`
	// Monotonic within the (prompt_type, document_type) scope
	Version int `json:"version,omitempty"`
	// PromptText holds the value of the "prompt_text" field.
	PromptText string `json:"prompt_text,omitempty"`
	// PerformanceScore holds the value of the "performance_score" field.
	PerformanceScore *float64 `json:"performance_score,omitempty"`
	// CanEvolve holds the value of the "can_evolve" field.
	CanEvolve bool `json:"can_evolve,omitempty"`
	// Evolution stops at or above this score
	ScoreCeiling *float64 `json:"score_ceiling,omitempty"`
	// Aggregation prompts: an upgrade outdates dependent files
	RegeneratesOnUpdate bool `json:"regenerates_on_update,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Prompt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prompt.FieldCanEvolve, prompt.FieldRegeneratesOnUpdate, prompt.FieldIsActive:
			values[i] = new(sql.NullBool)
		case prompt.FieldPerformanceScore, prompt.FieldScoreCeiling:
			values[i] = new(sql.NullFloat64)
		case prompt.FieldVersion:
			values[i] = new(sql.NullInt64)
		case prompt.FieldID, prompt.FieldPromptType, prompt.FieldDocumentType, prompt.FieldPromptText:
			values[i] = new(sql.NullString)
		case prompt.FieldCreatedAt, prompt.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Prompt fields.
func (_m *Prompt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prompt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case prompt.FieldPromptType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_type", values[i])
			} else if value.Valid {
				_m.PromptType = prompt.PromptType(value.String)
			}
		case prompt.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = new(string)
				*_m.DocumentType = value.String
			}
		case prompt.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case prompt.FieldPromptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_text", values[i])
			} else if value.Valid {
				_m.PromptText = value.String
			}
		case prompt.FieldPerformanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field performance_score", values[i])
			} else if value.Valid {
				_m.PerformanceScore = new(float64)
				*_m.PerformanceScore = value.Float64
			}
		case prompt.FieldCanEvolve:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_evolve", values[i])
			} else if value.Valid {
				_m.CanEvolve = value.Bool
			}
		case prompt.FieldScoreCeiling:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_ceiling", values[i])
			} else if value.Valid {
				_m.ScoreCeiling = new(float64)
				*_m.ScoreCeiling = value.Float64
			}
		case prompt.FieldRegeneratesOnUpdate:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field regenerates_on_update", values[i])
			} else if value.Valid {
				_m.RegeneratesOnUpdate = value.Bool
			}
		case prompt.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case prompt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prompt.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Prompt.
// This includes values selected through modifiers, order, etc.
func (_m *Prompt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Prompt.
// Note that you need to call Prompt.Unwrap() before calling this method if this Prompt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Prompt) Update() *PromptUpdateOne {
	return NewPromptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Prompt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Prompt) Unwrap() *Prompt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Prompt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Prompt) String() string {
	var builder strings.Builder
	builder.WriteString("Prompt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("prompt_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptType))
	builder.WriteString(", ")
	if v := _m.DocumentType; v != nil {
		builder.WriteString("document_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("prompt_text=")
	builder.WriteString(_m.PromptText)
	builder.WriteString(", ")
	if v := _m.PerformanceScore; v != nil {
		builder.WriteString("performance_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("can_evolve=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanEvolve))
	builder.WriteString(", ")
	if v := _m.ScoreCeiling; v != nil {
		builder.WriteString("score_ceiling=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("regenerates_on_update=")
	builder.WriteString(fmt.Sprintf("%v", _m.RegeneratesOnUpdate))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Prompts is a parsable slice of Prompt.
type Prompts []*Prompt
