package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/announcement/domain"
	"github.com/allisson/campus/internal/metrics"
)

const metricsDomain = "announcements"

// announcementUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type announcementUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewAnnouncementUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewAnnouncementUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &announcementUseCaseWithMetrics{next: useCase, metrics: m}
}

func (a *announcementUseCaseWithMetrics) Create(
	ctx context.Context,
	authorID uuid.UUID,
	input *domain.CreateAnnouncementInput,
) (*domain.Announcement, error) {
	start := time.Now()
	announcement, err := a.next.Create(ctx, authorID, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "announcement_create", start, err)
	return announcement, err
}

func (a *announcementUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	start := time.Now()
	announcement, err := a.next.Get(ctx, id)
	metrics.Observe(ctx, a.metrics, metricsDomain, "announcement_get", start, err)
	return announcement, err
}

func (a *announcementUseCaseWithMetrics) List(ctx context.Context, category string) ([]*domain.Announcement, error) {
	start := time.Now()
	announcements, err := a.next.List(ctx, category)
	metrics.Observe(ctx, a.metrics, metricsDomain, "announcement_list", start, err)
	return announcements, err
}

func (a *announcementUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateAnnouncementInput,
) (*domain.Announcement, error) {
	start := time.Now()
	announcement, err := a.next.Update(ctx, id, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "announcement_update", start, err)
	return announcement, err
}

func (a *announcementUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := a.next.Delete(ctx, id)
	metrics.Observe(ctx, a.metrics, metricsDomain, "announcement_delete", start, err)
	return err
}
