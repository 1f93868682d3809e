// Package dto provides data transfer objects for the request endpoints.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/request/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

var (
	typeRule = customValidation.OneOf(
		string(domain.TypeEvent),
		string(domain.TypeClub),
		string(domain.TypeRole),
	)
	roleRule = customValidation.OneOf(
		string(authDomain.RoleFaculty),
		string(authDomain.RoleAdmin),
	)
)

// CreateRequestRequest is the body of POST /api/requests. The requester comes
// from the session.
type CreateRequestRequest struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	RequestedRole string `json:"requested_role"`
}

// Validate checks the request fields.
func (r *CreateRequestRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Type, validation.Required, typeRule),
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Date, customValidation.Timestamp),
		validation.Field(&r.RequestedRole, roleRule),
	)
	return customValidation.WrapValidationError(err, "type", "name", "description")
}

// ToInput converts a validated request to the use case input.
func (r *CreateRequestRequest) ToInput() *domain.CreateRequestInput {
	var date *time.Time
	if r.Date != "" {
		if t, err := customValidation.ParseTimestamp(r.Date); err == nil {
			date = &t
		}
	}
	return &domain.CreateRequestInput{
		Type:          domain.Type(r.Type),
		Name:          r.Name,
		Description:   r.Description,
		Date:          date,
		RequestedRole: authDomain.Role(r.RequestedRole),
	}
}
