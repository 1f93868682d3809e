// Package domain defines the campus credential record.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/errors"
)

// User is a persisted credential record. Password always holds a hash.
type User struct {
	ID        uuid.UUID
	Email     string
	Password  string //nolint:gosec // password hash, never plaintext
	Role      authDomain.Role
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal returns the request identity for u.
func (u *User) Principal() (*authDomain.Principal, error) {
	return authDomain.NewPrincipal(u.ID, u.Email, u.Role, u.Name)
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.WithMessage(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.WithMessage(errors.ErrConflict, "user already exists")

	// ErrInvalidRole indicates a role outside student, faculty and admin.
	ErrInvalidRole = errors.WithMessage(errors.ErrInvalidInput, "invalid role")
)

// CreateUserInput holds the fields needed to create a user. An empty Role
// defaults to student.
type CreateUserInput struct {
	Email    string
	Password string //nolint:gosec // plaintext, hashed before storage
	Name     string
	Role     authDomain.Role
}

// DemoUsers are the accounts written by the seed command.
var DemoUsers = []CreateUserInput{
	{Email: "student@klh.edu", Password: "student123", Name: "Demo Student", Role: authDomain.RoleStudent},
	{Email: "faculty@klh.edu", Password: "faculty123", Name: "Demo Faculty", Role: authDomain.RoleFaculty},
	{Email: "admin@klh.edu", Password: "admin123", Name: "Demo Admin", Role: authDomain.RoleAdmin},
}
