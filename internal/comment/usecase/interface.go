// Package usecase implements item comments.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/comment/domain"
)

// CommentRepository persists comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error

	// ListByItem returns an item's comments oldest first.
	ListByItem(ctx context.Context, itemType domain.ItemType, itemID uuid.UUID) ([]*domain.Comment, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

// UseCase defines comment operations.
type UseCase interface {
	// Create records a comment written by author.
	Create(ctx context.Context, author *authDomain.Principal, input *domain.CreateCommentInput) (*domain.Comment, error)

	ListByItem(ctx context.Context, itemType domain.ItemType, itemID uuid.UUID) ([]*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
