// Package dto provides data transfer objects for the event endpoints.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/campus/internal/event/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

// positive rejects set values below one. jellydator's Min treats zero as empty.
var positive = validation.By(func(value interface{}) error {
	n, ok := value.(*int)
	if ok && n != nil && *n < 1 {
		return validation.NewError("validation_min", "must be at least 1")
	}
	return nil
})

// CreateEventRequest is the body of POST /api/events.
type CreateEventRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	MaxAttendees *int   `json:"max_attendees"`
}

// Validate checks the request fields.
func (r *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.StartDate, validation.Required, customValidation.Timestamp),
		validation.Field(&r.EndDate, customValidation.Timestamp),
		validation.Field(&r.Category, validation.Length(0, 100)),
		validation.Field(&r.MaxAttendees, positive),
	)
	return customValidation.WrapValidationError(err, "title", "start_date")
}

// ToInput converts a validated request to the use case input.
func (r *CreateEventRequest) ToInput() *domain.CreateEventInput {
	start, _ := customValidation.ParseTimestamp(r.StartDate)
	return &domain.CreateEventInput{
		Title:        r.Title,
		Description:  r.Description,
		StartDate:    start,
		EndDate:      optionalTimestamp(&r.EndDate),
		Location:     r.Location,
		Category:     r.Category,
		MaxAttendees: r.MaxAttendees,
	}
}

// UpdateEventRequest is the body of PUT /api/events/:id. Omitted fields are kept.
type UpdateEventRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Location     *string `json:"location"`
	Category     *string `json:"category"`
	MaxAttendees *int    `json:"max_attendees"`
}

// Validate checks the provided fields.
func (r *UpdateEventRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.StartDate, validation.NilOrNotEmpty, customValidation.Timestamp),
		validation.Field(&r.EndDate, customValidation.Timestamp),
		validation.Field(&r.Category, validation.Length(0, 100)),
		validation.Field(&r.MaxAttendees, positive),
	)
	return customValidation.WrapValidationError(err, "title", "start_date")
}

// ToInput converts a validated request to the use case input.
func (r *UpdateEventRequest) ToInput() *domain.UpdateEventInput {
	return &domain.UpdateEventInput{
		Title:        r.Title,
		Description:  r.Description,
		StartDate:    optionalTimestamp(r.StartDate),
		EndDate:      optionalTimestamp(r.EndDate),
		Location:     r.Location,
		Category:     r.Category,
		MaxAttendees: r.MaxAttendees,
	}
}

func optionalTimestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := customValidation.ParseTimestamp(*s)
	if err != nil {
		return nil
	}
	return &t
}
