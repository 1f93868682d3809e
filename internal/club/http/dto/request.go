// Package dto provides data transfer objects for the club endpoints.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/campus/internal/club/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

// CreateClubRequest is the body of POST /api/clubs.
type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PresidentID string `json:"president_id"`
}

// Validate checks the request fields.
func (r *CreateClubRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Category, validation.Length(0, 100)),
		validation.Field(&r.PresidentID, customValidation.UUID),
	)
	return customValidation.WrapValidationError(err, "name", "description")
}

// ToInput converts a validated request to the use case input.
func (r *CreateClubRequest) ToInput() *domain.CreateClubInput {
	return &domain.CreateClubInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		PresidentID: optionalUUID(&r.PresidentID),
	}
}

// UpdateClubRequest is the body of PUT /api/clubs/:id. Omitted fields are kept.
type UpdateClubRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	PresidentID *string `json:"president_id"`
}

// Validate checks the provided fields.
func (r *UpdateClubRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, customValidation.NotBlank),
		validation.Field(&r.Category, validation.Length(0, 100)),
		validation.Field(&r.PresidentID, customValidation.UUID),
	)
	return customValidation.WrapValidationError(err, "name", "description")
}

// ToInput converts a validated request to the use case input.
func (r *UpdateClubRequest) ToInput() *domain.UpdateClubInput {
	return &domain.UpdateClubInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		PresidentID: optionalUUID(r.PresidentID),
	}
}

func optionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
