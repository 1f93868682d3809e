// Package usecase implements session orchestration: login, logout and password change.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	userDomain "github.com/allisson/campus/internal/user/domain"
)

// UserRepository is the slice of the credential store used by sessions.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
	FindByEmail(ctx context.Context, email string) (*userDomain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// SessionUseCase defines session lifecycle operations.
type SessionUseCase interface {
	// Login verifies credentials and issues a session token. An unknown email and
	// a wrong password both yield authDomain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*authDomain.Session, error)

	// Logout revokes token when a revocation list is configured. Invalid tokens
	// are ignored so logout is idempotent.
	Logout(ctx context.Context, token string) error

	// ChangePassword replaces the password of userID after checking the current one.
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}
