// Package dto provides data transfer objects for the announcement endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/campus/internal/announcement/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

var priorityRule = customValidation.OneOf(
	string(domain.PriorityLow),
	string(domain.PriorityNormal),
	string(domain.PriorityHigh),
	string(domain.PriorityUrgent),
)

// CreateAnnouncementRequest is the body of POST /api/announcements.
type CreateAnnouncementRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

// Validate checks the request fields.
func (r *CreateAnnouncementRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Content, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Priority, priorityRule),
		validation.Field(&r.Category, validation.Length(0, 100)),
	)
	return customValidation.WrapValidationError(err, "title", "content")
}

// ToInput converts a validated request to the use case input.
func (r *CreateAnnouncementRequest) ToInput() *domain.CreateAnnouncementInput {
	return &domain.CreateAnnouncementInput{
		Title:    r.Title,
		Content:  r.Content,
		Priority: domain.Priority(r.Priority),
		Category: r.Category,
	}
}

// UpdateAnnouncementRequest is the body of PUT /api/announcements/:id. Omitted fields are kept.
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Priority *string `json:"priority"`
	Category *string `json:"category"`
}

// Validate checks the provided fields.
func (r *UpdateAnnouncementRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Content, validation.NilOrNotEmpty, customValidation.NotBlank),
		validation.Field(&r.Priority, validation.NilOrNotEmpty, priorityRule),
		validation.Field(&r.Category, validation.Length(0, 100)),
	)
	return customValidation.WrapValidationError(err, "title", "content", "priority")
}

// ToInput converts a validated request to the use case input.
func (r *UpdateAnnouncementRequest) ToInput() *domain.UpdateAnnouncementInput {
	input := &domain.UpdateAnnouncementInput{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
	}
	if r.Priority != nil {
		priority := domain.Priority(*r.Priority)
		input.Priority = &priority
	}
	return input
}
