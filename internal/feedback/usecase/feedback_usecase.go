package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/feedback/domain"
)

type feedbackUseCase struct {
	feedbackRepo FeedbackRepository
}

func (f *feedbackUseCase) Submit(ctx context.Context, input *domain.SubmitFeedbackInput) (*domain.Feedback, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	feedback := &domain.Feedback{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    input.UserID,
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Category:  category,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := f.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (f *feedbackUseCase) List(ctx context.Context) ([]*domain.Feedback, error) {
	return f.feedbackRepo.List(ctx)
}

// NewFeedbackUseCase creates a new UseCase with the provided dependencies.
func NewFeedbackUseCase(feedbackRepo FeedbackRepository) UseCase {
	return &feedbackUseCase{feedbackRepo: feedbackRepo}
}
