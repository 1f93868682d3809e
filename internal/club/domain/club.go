// Package domain defines student clubs and club memberships.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/errors"
)

// DefaultCategory is applied when a club is created without a category.
const DefaultCategory = "general"

// Club is a student organization. PresidentName and MemberCount are read joins.
type Club struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Category      string
	PresidentID   uuid.UUID
	PresidentName string
	MemberCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Membership links a user to a club. The club and user fields besides the ids
// are read joins filled according to the listing.
type Membership struct {
	ID           uuid.UUID
	ClubID       uuid.UUID
	ClubName     string
	ClubCategory string
	UserID       uuid.UUID
	UserName     string
	UserEmail    string
	UserRole     string
	JoinedAt     time.Time
}

// CreateClubInput holds the fields of a new club. A nil PresidentID makes the
// creator the president.
type CreateClubInput struct {
	Name        string
	Description string
	Category    string
	PresidentID *uuid.UUID
}

// UpdateClubInput holds a partial update. Nil fields are left unchanged.
type UpdateClubInput struct {
	Name        *string
	Description *string
	Category    *string
	PresidentID *uuid.UUID
}

// Apply copies the provided fields onto c.
func (in *UpdateClubInput) Apply(c *Club) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Category != nil {
		c.Category = *in.Category
	}
	if in.PresidentID != nil {
		c.PresidentID = *in.PresidentID
	}
}

// Domain-specific errors for club operations.
var (
	// ErrClubNotFound indicates the club does not exist.
	ErrClubNotFound = errors.WithMessage(errors.ErrNotFound, "club not found")

	// ErrMembershipNotFound indicates the membership id does not exist.
	ErrMembershipNotFound = errors.WithMessage(errors.ErrNotFound, "membership not found")

	// ErrAlreadyMember indicates the user already joined the club.
	ErrAlreadyMember = errors.WithMessage(errors.ErrConflict, "already a member")

	// ErrNotMember indicates the user has no membership to leave.
	ErrNotMember = errors.WithMessage(errors.ErrNotFound, "not a member")
)
