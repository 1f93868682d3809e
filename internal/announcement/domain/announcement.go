// Package domain defines campus announcements.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/errors"
)

// Priority ranks how prominently an announcement is shown.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every valid priority.
var Priorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

// Valid reports whether p is one of Priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// DefaultCategory is applied when an announcement is created without a category.
const DefaultCategory = "general"

// Announcement is a notice posted by staff. AuthorName is a read join.
type Announcement struct {
	ID         uuid.UUID
	Title      string
	Content    string
	Priority   Priority
	Category   string
	AuthorID   uuid.UUID
	AuthorName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateAnnouncementInput holds the fields of a new announcement.
type CreateAnnouncementInput struct {
	Title    string
	Content  string
	Priority Priority
	Category string
}

// UpdateAnnouncementInput holds a partial update. Nil fields are left unchanged.
type UpdateAnnouncementInput struct {
	Title    *string
	Content  *string
	Priority *Priority
	Category *string
}

// Apply copies the provided fields onto a.
func (in *UpdateAnnouncementInput) Apply(a *Announcement) {
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Content != nil {
		a.Content = *in.Content
	}
	if in.Priority != nil {
		a.Priority = *in.Priority
	}
	if in.Category != nil {
		a.Category = *in.Category
	}
}

// Domain-specific errors for announcement operations.
var (
	// ErrAnnouncementNotFound indicates the announcement does not exist.
	ErrAnnouncementNotFound = errors.WithMessage(errors.ErrNotFound, "announcement not found")

	// ErrInvalidPriority indicates a priority outside Priorities.
	ErrInvalidPriority = errors.WithMessage(errors.ErrInvalidInput, "invalid priority")
)
