package usecase

import (
	"context"
	"time"

	"github.com/allisson/campus/internal/feedback/domain"
	"github.com/allisson/campus/internal/metrics"
)

const metricsDomain = "feedback"

// feedbackUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type feedbackUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewFeedbackUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewFeedbackUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &feedbackUseCaseWithMetrics{next: useCase, metrics: m}
}

func (f *feedbackUseCaseWithMetrics) Submit(
	ctx context.Context,
	input *domain.SubmitFeedbackInput,
) (*domain.Feedback, error) {
	start := time.Now()
	feedback, err := f.next.Submit(ctx, input)
	metrics.Observe(ctx, f.metrics, metricsDomain, "feedback_submit", start, err)
	return feedback, err
}

func (f *feedbackUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Feedback, error) {
	start := time.Now()
	feedback, err := f.next.List(ctx)
	metrics.Observe(ctx, f.metrics, metricsDomain, "feedback_list", start, err)
	return feedback, err
}
