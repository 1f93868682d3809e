// Package dto provides data transfer objects for the session endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/campus/internal/errors"
	customValidation "github.com/allisson/campus/internal/validation"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // login credential
}

// ErrLoginFieldsRequired is reported when either login field is missing.
var ErrLoginFieldsRequired = apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password required")

// Validate reports ErrLoginFieldsRequired when either field is missing.
func (r *LoginRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
	if err != nil {
		return ErrLoginFieldsRequired
	}
	return nil
}

// ChangePasswordRequest is the body of PUT /api/auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"` //nolint:gosec // credential
	NewPassword     string `json:"new_password"`     //nolint:gosec // credential
}

// Validate checks both passwords are present and the new one is long enough.
func (r *ChangePasswordRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword,
			validation.Required,
			customValidation.PasswordStrength{MinLength: 8},
		),
	)
	return customValidation.WrapValidationError(err, "current_password", "new_password")
}
