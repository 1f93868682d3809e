// Package usecase implements credential store management: account creation,
// listing, role reassignment and demo seeding.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/user/domain"
)

// UserRepository persists credential records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role authDomain.Role) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UseCase defines the user management operations.
type UseCase interface {
	// Create hashes the password and stores a new user. The email is lowercased
	// and an empty role defaults to student. A duplicate email yields
	// domain.ErrUserAlreadyExists.
	Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error)

	// List returns users ordered by email.
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)

	// UpdateRole reassigns a user's role and returns the updated record.
	UpdateRole(ctx context.Context, id uuid.UUID, role authDomain.Role) (*domain.User, error)

	// UpdateRoleByEmail is UpdateRole keyed by email, used by the CLI.
	UpdateRoleByEmail(ctx context.Context, email string, role authDomain.Role) (*domain.User, error)

	// Seed creates each input whose email is not taken yet and returns how many were created.
	Seed(ctx context.Context, inputs []domain.CreateUserInput) (int, error)
}
