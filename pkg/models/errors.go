package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a stage failure for retry policy (spec of record:
// transient errors are retried with bookkeeping, schema errors escalate on
// the second consecutive occurrence, permanent errors fail the row
// immediately, cancellation is not an error).
type ErrorKind int

// Error kinds.
const (
	KindTransient ErrorKind = iota
	KindSchema
	KindPermanent
	KindCancelled
	KindLockTimeout
)

// SchemaErrorPrefix marks schema errors in documents.last_error so a repeat
// on the same row can be detected across dispatches.
const SchemaErrorPrefix = "schema: "

// StageError wraps a stage failure with its kind and originating stage.
type StageError struct {
	Kind  ErrorKind
	Stage string
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StageError) Unwrap() error { return e.Err }

// Transient wraps err as a retryable stage failure.
func Transient(stage string, err error) *StageError {
	return &StageError{Kind: KindTransient, Stage: stage, Err: err}
}

// SchemaErr wraps err as a malformed-LLM-response failure.
func SchemaErr(stage string, err error) *StageError {
	return &StageError{Kind: KindSchema, Stage: stage, Err: err}
}

// Permanent wraps err as an unretryable stage failure.
func Permanent(stage string, err error) *StageError {
	return &StageError{Kind: KindPermanent, Stage: stage, Err: err}
}

// KindOf classifies err. Context cancellation dominates; unclassified errors
// default to transient so at-least-once delivery errs on the retry side.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindTransient
	}
	if errors.Is(err, context.Canceled) {
		return KindCancelled
	}
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindTransient
}

// LastErrorText renders err for the last_error column, prefixing schema
// errors so escalation can detect a repeat.
func LastErrorText(err error) string {
	if KindOf(err) == KindSchema {
		return SchemaErrorPrefix + err.Error()
	}
	return err.Error()
}

// IsRepeatedSchemaError reports whether a fresh schema error follows a
// schema error already recorded on the row.
func IsRepeatedSchemaError(lastError *string, err error) bool {
	if lastError == nil || KindOf(err) != KindSchema {
		return false
	}
	return strings.HasPrefix(*lastError, SchemaErrorPrefix)
}
