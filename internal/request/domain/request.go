// Package domain defines requests for new events, new clubs and role elevation,
// and their review lifecycle.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/errors"
)

// Type is what a request asks for.
type Type string

const (
	TypeEvent Type = "event"
	TypeClub  Type = "club"
	TypeRole  Type = "role"
)

// Valid reports whether t is a known request type.
func (t Type) Valid() bool {
	switch t {
	case TypeEvent, TypeClub, TypeRole:
		return true
	default:
		return false
	}
}

// Status is the review state of a request. Only pending requests transition.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Request is a submission awaiting admin review. RequestedRole is set only for TypeRole.
type Request struct {
	ID             uuid.UUID
	Type           Type
	Name           string
	Description    string
	Date           *time.Time
	RequestedRole  authDomain.Role
	RequestedBy    uuid.UUID
	RequesterEmail string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateRequestInput holds a new request.
type CreateRequestInput struct {
	Type          Type
	Name          string
	Description   string
	Date          *time.Time
	RequestedRole authDomain.Role
}

// ElevatableRoles are the roles a role request may ask for.
var ElevatableRoles = []authDomain.Role{authDomain.RoleFaculty, authDomain.RoleAdmin}

var (
	// ErrRequestNotFound indicates the request does not exist.
	ErrRequestNotFound = errors.WithMessage(errors.ErrNotFound, "request not found")

	// ErrAlreadyProcessed indicates the request is no longer pending.
	ErrAlreadyProcessed = errors.WithMessage(errors.ErrConflict, "request already processed")

	// ErrInvalidType indicates a type outside event, club and role.
	ErrInvalidType = errors.WithMessage(errors.ErrInvalidInput, "invalid request type")

	// ErrRequestedRoleRequired indicates a role request without a valid target role.
	ErrRequestedRoleRequired = errors.WithMessage(errors.ErrInvalidInput, "requested_role required")

	// ErrInvalidStatus indicates a status filter outside the known statuses.
	ErrInvalidStatus = errors.WithMessage(errors.ErrInvalidInput, "invalid status")
)
