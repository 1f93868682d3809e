// Package usecase implements feedback collection.
package usecase

import (
	"context"

	"github.com/allisson/campus/internal/feedback/domain"
)

// FeedbackRepository persists feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error

	// List returns all feedback newest first.
	List(ctx context.Context) ([]*domain.Feedback, error)
}

// UseCase defines feedback operations.
type UseCase interface {
	Submit(ctx context.Context, input *domain.SubmitFeedbackInput) (*domain.Feedback, error)
	List(ctx context.Context) ([]*domain.Feedback, error)
}
