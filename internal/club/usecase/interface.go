// Package usecase implements club management and club membership.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/club/domain"
)

// ClubRepository persists clubs and memberships.
type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Club, error)
	List(ctx context.Context) ([]*domain.Club, error)
	Update(ctx context.Context, club *domain.Club) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateMembership(ctx context.Context, membership *domain.Membership) error
	GetMembership(ctx context.Context, id uuid.UUID) (*domain.Membership, error)
	DeleteMembership(ctx context.Context, id uuid.UUID) error

	// DeleteUserMembership removes userID from clubID. It returns ErrNotMember
	// when no row matched.
	DeleteUserMembership(ctx context.Context, clubID, userID uuid.UUID) error

	ListMembers(ctx context.Context, clubID uuid.UUID) ([]*domain.Membership, error)
	ListUserMemberships(ctx context.Context, userID uuid.UUID) ([]*domain.Membership, error)
}

// UseCase defines club operations.
type UseCase interface {
	Create(ctx context.Context, creatorID uuid.UUID, input *domain.CreateClubInput) (*domain.Club, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Club, error)

	// List returns clubs ordered by name.
	List(ctx context.Context) ([]*domain.Club, error)

	Update(ctx context.Context, id uuid.UUID, input *domain.UpdateClubInput) (*domain.Club, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Join adds userID to the club. A second join fails with ErrAlreadyMember.
	Join(ctx context.Context, clubID, userID uuid.UUID) (*domain.Membership, error)
	Leave(ctx context.Context, clubID, userID uuid.UUID) error

	GetMembership(ctx context.Context, id uuid.UUID) (*domain.Membership, error)
	RemoveMembership(ctx context.Context, id uuid.UUID) error

	ListMembers(ctx context.Context, clubID uuid.UUID) ([]*domain.Membership, error)
	ListUserMemberships(ctx context.Context, userID uuid.UUID) ([]*domain.Membership, error)
}
