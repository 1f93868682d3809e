package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/comment/domain"
)

type commentUseCase struct {
	commentRepo CommentRepository
}

func (u *commentUseCase) Create(
	ctx context.Context,
	author *authDomain.Principal,
	input *domain.CreateCommentInput,
) (*domain.Comment, error) {
	if !input.ItemType.Valid() {
		return nil, domain.ErrInvalidItemType
	}

	comment := &domain.Comment{
		ID:        uuid.Must(uuid.NewV7()),
		ItemType:  input.ItemType,
		ItemID:    input.ItemID,
		UserID:    author.ID(),
		UserEmail: author.Email(),
		UserName:  author.Name(),
		UserRole:  author.Role(),
		Body:      input.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (u *commentUseCase) ListByItem(
	ctx context.Context,
	itemType domain.ItemType,
	itemID uuid.UUID,
) ([]*domain.Comment, error) {
	if !itemType.Valid() {
		return nil, domain.ErrInvalidItemType
	}
	return u.commentRepo.ListByItem(ctx, itemType, itemID)
}

func (u *commentUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.commentRepo.Delete(ctx, id)
}

// NewCommentUseCase creates a new UseCase with the provided dependencies.
func NewCommentUseCase(commentRepo CommentRepository) UseCase {
	return &commentUseCase{commentRepo: commentRepo}
}
