// Package services implements the persistence layer: typed operations over
// the Ent client for documents, tags, series, files, and prompts. Services
// own all status writes; every status change is a compare-and-set against
// the legal transition relation.
package services

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a requested resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// ConflictError indicates a compare-and-set status write lost the race: the
// row was no longer in the expected status. Callers treat it as "someone
// else got here first" and back off.
type ConflictError struct {
	Resource string
	ID       string
	Expected string
	Target   string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s: not in status %q (wanted %q)", e.Resource, e.ID, e.Expected, e.Target)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// InvalidTransitionError indicates a status write that is not a legal edge
// of the status machine. This is always a programming error.
type InvalidTransitionError struct {
	Resource string
	From     string
	To       string
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("illegal %s transition %s → %s", e.Resource, e.From, e.To)
}
