// Package domain defines campus events and event registrations.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/errors"
)

// DefaultCategory is applied when an event is created without a category.
const DefaultCategory = "general"

// Event is a scheduled campus event. OrganizerName and RegistrationCount are
// filled on reads and are not stored on the event row.
type Event struct {
	ID                uuid.UUID
	Title             string
	Description       string
	StartDate         time.Time
	EndDate           *time.Time
	Location          string
	Category          string
	MaxAttendees      *int
	OrganizerID       uuid.UUID
	OrganizerName     string
	RegistrationCount int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Full reports whether the event reached its attendee limit.
func (e *Event) Full() bool {
	return e.MaxAttendees != nil && e.RegistrationCount >= *e.MaxAttendees
}

// ValidateDates rejects an end date before the start date.
func (e *Event) ValidateDates() error {
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return ErrInvalidDates
	}
	return nil
}

// Registration is a user's place on an event roster. The event and user
// fields besides the ids are read joins.
type Registration struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	EventTitle     string
	EventStartDate time.Time
	EventLocation  string
	UserID         uuid.UUID
	UserName       string
	UserEmail      string
	RegisteredAt   time.Time
}

// CreateEventInput holds the fields of a new event.
type CreateEventInput struct {
	Title        string
	Description  string
	StartDate    time.Time
	EndDate      *time.Time
	Location     string
	Category     string
	MaxAttendees *int
}

// UpdateEventInput holds a partial update. Nil fields are left unchanged.
type UpdateEventInput struct {
	Title        *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	Location     *string
	Category     *string
	MaxAttendees *int
}

// Apply copies the provided fields onto e.
func (in *UpdateEventInput) Apply(e *Event) {
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		e.EndDate = in.EndDate
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.MaxAttendees != nil {
		e.MaxAttendees = in.MaxAttendees
	}
}

// Domain-specific errors for event operations.
var (
	// ErrEventNotFound indicates the event does not exist.
	ErrEventNotFound = errors.WithMessage(errors.ErrNotFound, "event not found")

	// ErrAlreadyRegistered indicates the user is already on the roster.
	ErrAlreadyRegistered = errors.WithMessage(errors.ErrConflict, "already registered")

	// ErrEventFull indicates the roster reached max_attendees.
	ErrEventFull = errors.WithMessage(errors.ErrConflict, "event is full")

	// ErrInvalidDates indicates end_date falls before start_date.
	ErrInvalidDates = errors.WithMessage(errors.ErrInvalidInput, "end_date must not be before start_date")
)
