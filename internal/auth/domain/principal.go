package domain

import (
	"github.com/google/uuid"

	apperrors "github.com/allisson/campus/internal/errors"
)

// Principal is the authenticated identity of a single request. A nil *Principal
// stands for an anonymous caller. Fields are unexported so a principal cannot be
// altered once built.
type Principal struct {
	id    uuid.UUID
	email string
	role  Role
	name  string
}

// NewPrincipal builds a principal, rejecting a nil id or an unknown role.
func NewPrincipal(id uuid.UUID, email string, role Role, name string) (*Principal, error) {
	if id == uuid.Nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal id required")
	}
	if !role.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid role")
	}
	return &Principal{id: id, email: email, role: role, name: name}, nil
}

// ID returns the user id the principal was issued for.
func (p *Principal) ID() uuid.UUID { return p.id }

// Email returns the principal's email.
func (p *Principal) Email() string { return p.email }

// Role returns the principal's role.
func (p *Principal) Role() Role { return p.role }

// Name returns the display name.
func (p *Principal) Name() string { return p.name }

// Is reports whether the principal holds role r. Safe on a nil receiver.
func (p *Principal) Is(r Role) bool {
	return p != nil && p.role == r
}
