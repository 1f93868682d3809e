package domain

import (
	"github.com/allisson/campus/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = errors.WithMessage(errors.ErrUnauthorized, "invalid credentials")

	// ErrAuthenticationRequired is returned when no session credential was presented.
	ErrAuthenticationRequired = errors.WithMessage(errors.ErrUnauthorized, "authentication required")

	// ErrInvalidToken is returned for a malformed, tampered, expired or revoked token.
	ErrInvalidToken = errors.WithMessage(errors.ErrUnauthorized, "invalid token")
)

// DecisionError converts a denial into the matching error kind. It returns nil when allowed.
func DecisionError(d Decision) error {
	if d.Allowed {
		return nil
	}
	if d.Reason == ReasonUnauthenticated {
		return errors.WithMessage(errors.ErrUnauthorized, d.Message)
	}
	return errors.WithMessage(errors.ErrForbidden, d.Message)
}
