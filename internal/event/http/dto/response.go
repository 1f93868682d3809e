package dto

import (
	"time"

	"github.com/allisson/campus/internal/event/domain"
)

// EventResponse is the public view of an event.
type EventResponse struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Location          string     `json:"location"`
	Category          string     `json:"category"`
	MaxAttendees      *int       `json:"max_attendees"`
	OrganizerID       string     `json:"organizer_id"`
	OrganizerName     string     `json:"organizer_name"`
	RegistrationCount int        `json:"registration_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// RegistrationResponse is one roster entry. The event and user fields are
// filled according to which listing produced it.
type RegistrationResponse struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	EventTitle     string    `json:"event_title,omitempty"`
	EventStartDate time.Time `json:"event_start_date,omitzero"`
	EventLocation  string    `json:"event_location,omitempty"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name,omitempty"`
	UserEmail      string    `json:"user_email,omitempty"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// MapEventToResponse converts a domain event.
func MapEventToResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                e.ID.String(),
		Title:             e.Title,
		Description:       e.Description,
		StartDate:         e.StartDate,
		EndDate:           e.EndDate,
		Location:          e.Location,
		Category:          e.Category,
		MaxAttendees:      e.MaxAttendees,
		OrganizerID:       e.OrganizerID.String(),
		OrganizerName:     e.OrganizerName,
		RegistrationCount: e.RegistrationCount,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// MapEventsToResponse converts a list of events.
func MapEventsToResponse(events []*domain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, MapEventToResponse(e))
	}
	return out
}

// MapRegistrationToResponse converts a domain registration.
func MapRegistrationToResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:             r.ID.String(),
		EventID:        r.EventID.String(),
		EventTitle:     r.EventTitle,
		EventStartDate: r.EventStartDate,
		EventLocation:  r.EventLocation,
		UserID:         r.UserID.String(),
		UserName:       r.UserName,
		UserEmail:      r.UserEmail,
		RegisteredAt:   r.RegisteredAt,
	}
}

// MapRegistrationsToResponse converts a list of registrations.
func MapRegistrationsToResponse(registrations []*domain.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(registrations))
	for _, r := range registrations {
		out = append(out, MapRegistrationToResponse(r))
	}
	return out
}
