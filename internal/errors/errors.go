// Package errors provides the error kinds shared by every campus module. Use cases
// return these kinds (directly or through WithMessage) and the HTTP boundary maps
// each kind to a status code.
package errors

import (
	"errors"
	"fmt"
)

// Standard error kinds that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a duplicate email, membership, registration or an invalid state transition.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is malformed or incomplete.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request carries no valid credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the principal lacks the role or ownership required.
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited indicates the caller exceeded its request budget.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// kindError pairs an error kind with a message that is safe to show to API callers.
type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

// WithMessage returns an error of the given kind whose Error() is message.
// errors.Is(err, kind) holds for the result.
func WithMessage(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

// PublicMessage returns the caller-facing message attached with WithMessage.
func PublicMessage(err error) (string, bool) {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.message, true
	}
	return "", false
}

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
