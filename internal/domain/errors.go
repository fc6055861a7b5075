// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state conflict such as a duplicate unique key.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates the caller is authenticated but not permitted
	// to perform the operation on the resource.
	ErrUnauthorized = errors.New("unauthorized")
)

// Kind classifies an error for adapters that need to pick a response shape.
type Kind int

const (
	// KindInternal is any error without a domain classification.
	KindInternal Kind = iota

	// KindValidation covers bad input and business-level not-found/conflict outcomes.
	KindValidation

	// KindUnauthorized covers ownership and permission failures.
	KindUnauthorized

	// KindNotFound is a store-level missing entity not yet translated by a use case.
	KindNotFound

	// KindConflict is a store-level uniqueness conflict not yet translated by a use case.
	KindConflict
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// KindOf reports the kind of err. Validation and unauthorized take precedence
// over the store-level kinds when an error chain carries several.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity  string
	Reason  string
	Details string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s conflict: %s (%s)", e.Entity, e.Reason, e.Details)
	}

	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError provides context for validation errors.
// Message is safe to show to API callers as-is.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnauthorizedError reports an operation the current user may not perform.
type UnauthorizedError struct {
	Operation string
	Message   string
}

// Error implements the error interface.
func (e *UnauthorizedError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("operation %q unauthorized: %s", e.Operation, e.Message)
	}

	return "unauthorized: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// NewUnauthorizedError creates an unauthorized error with context.
func NewUnauthorizedError(operation, message string) error {
	return &UnauthorizedError{Operation: operation, Message: message}
}

// PublicMessage returns the caller-facing message carried by a domain error.
// The second result is false for errors that must not be shown to callers.
func PublicMessage(err error) (string, bool) {
	var (
		validationErr   *ValidationError
		unauthorizedErr *UnauthorizedError
		notFoundErr     *NotFoundError
		conflictErr     *ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message, true
	case errors.As(err, &unauthorizedErr):
		return unauthorizedErr.Message, true
	case errors.As(err, &notFoundErr):
		return notFoundErr.Error(), true
	case errors.As(err, &conflictErr):
		return conflictErr.Error(), true
	default:
		return "", false
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnauthorized checks if an error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
