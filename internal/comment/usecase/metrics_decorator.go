package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/comment/domain"
	"github.com/allisson/campus/internal/metrics"
)

const metricsDomain = "comments"

// commentUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type commentUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewCommentUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewCommentUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &commentUseCaseWithMetrics{next: useCase, metrics: m}
}

func (u *commentUseCaseWithMetrics) Create(
	ctx context.Context,
	author *authDomain.Principal,
	input *domain.CreateCommentInput,
) (*domain.Comment, error) {
	start := time.Now()
	comment, err := u.next.Create(ctx, author, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "comment_create", start, err)
	return comment, err
}

func (u *commentUseCaseWithMetrics) ListByItem(
	ctx context.Context,
	itemType domain.ItemType,
	itemID uuid.UUID,
) ([]*domain.Comment, error) {
	start := time.Now()
	comments, err := u.next.ListByItem(ctx, itemType, itemID)
	metrics.Observe(ctx, u.metrics, metricsDomain, "comment_list", start, err)
	return comments, err
}

func (u *commentUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	metrics.Observe(ctx, u.metrics, metricsDomain, "comment_delete", start, err)
	return err
}
