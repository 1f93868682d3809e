// Package dto provides data transfer objects for admin user management.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/user/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

var roleRule = customValidation.OneOf(
	string(authDomain.RoleStudent),
	string(authDomain.RoleFaculty),
	string(authDomain.RoleAdmin),
)

// CreateUserRequest is the body of POST /api/admin/users.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // initial credential
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Validate checks the request fields.
func (r *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, customValidation.NotBlank, customValidation.Email),
		validation.Field(&r.Password, validation.Required, customValidation.PasswordStrength{MinLength: 8}),
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Role, roleRule),
	)
	return customValidation.WrapValidationError(err, "email", "password", "name")
}

// ToInput converts the request to the use case input.
func (r *CreateUserRequest) ToInput() *domain.CreateUserInput {
	return &domain.CreateUserInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Role:     authDomain.Role(r.Role),
	}
}

// UpdateRoleRequest is the body of PUT /api/admin/users/:id/role.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// Validate reports "role required" or "invalid role".
func (r *UpdateRoleRequest) Validate() error {
	if err := validation.Validate(r.Role, validation.Required); err != nil {
		return customValidation.WrapValidationError(validation.Errors{"role": err})
	}
	if !authDomain.Role(r.Role).Valid() {
		return domain.ErrInvalidRole
	}
	return nil
}
