// Package dto provides data transfer objects for the notification endpoints.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/campus/internal/notification/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

var typeRule = customValidation.OneOf(
	string(domain.TypeInfo),
	string(domain.TypeSuccess),
	string(domain.TypeWarning),
	string(domain.TypeError),
)

// userIDList rejects lists holding anything but canonical ids.
var userIDList = validation.By(func(value interface{}) error {
	ids, _ := value.([]string)
	for _, id := range ids {
		if uuid.Validate(id) != nil {
			return validation.NewError("validation_uuid", "must contain valid ids")
		}
	}
	return nil
})

// SendNotificationRequest is the body of POST /api/notifications.
type SendNotificationRequest struct {
	UserIDs []string `json:"user_ids"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
}

// Validate checks the request fields.
func (r *SendNotificationRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Message, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Type, typeRule),
		validation.Field(&r.UserIDs, userIDList),
	)
	return customValidation.WrapValidationError(err, "title", "message")
}

// ToInput converts a validated request to the use case input.
func (r *SendNotificationRequest) ToInput() *domain.SendInput {
	ids := make([]uuid.UUID, 0, len(r.UserIDs))
	for _, id := range r.UserIDs {
		ids = append(ids, uuid.MustParse(id))
	}
	return &domain.SendInput{
		UserIDs: ids,
		Type:    domain.Type(r.Type),
		Title:   r.Title,
		Message: r.Message,
	}
}
