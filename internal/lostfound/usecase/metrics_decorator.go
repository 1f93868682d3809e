package usecase

import (
	"context"
	"time"

	"github.com/allisson/campus/internal/lostfound/domain"
	"github.com/allisson/campus/internal/metrics"
)

const metricsDomain = "lostfound"

// lostItemUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type lostItemUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewLostItemUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewLostItemUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &lostItemUseCaseWithMetrics{next: useCase, metrics: m}
}

func (l *lostItemUseCaseWithMetrics) Report(
	ctx context.Context,
	input *domain.ReportInput,
) (*domain.LostItem, error) {
	start := time.Now()
	item, err := l.next.Report(ctx, input)
	metrics.Observe(ctx, l.metrics, metricsDomain, "lost_item_report", start, err)
	return item, err
}

func (l *lostItemUseCaseWithMetrics) List(ctx context.Context) ([]*domain.LostItem, error) {
	start := time.Now()
	items, err := l.next.List(ctx)
	metrics.Observe(ctx, l.metrics, metricsDomain, "lost_item_list", start, err)
	return items, err
}
