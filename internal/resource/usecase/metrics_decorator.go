package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/metrics"
	"github.com/allisson/campus/internal/resource/domain"
)

const metricsDomain = "resources"

// resourceUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type resourceUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewResourceUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewResourceUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &resourceUseCaseWithMetrics{next: useCase, metrics: m}
}

func (r *resourceUseCaseWithMetrics) Create(
	ctx context.Context,
	uploaderID uuid.UUID,
	input *domain.CreateResourceInput,
) (*domain.Resource, error) {
	start := time.Now()
	resource, err := r.next.Create(ctx, uploaderID, input)
	metrics.Observe(ctx, r.metrics, metricsDomain, "resource_create", start, err)
	return resource, err
}

func (r *resourceUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	start := time.Now()
	resource, err := r.next.Get(ctx, id)
	metrics.Observe(ctx, r.metrics, metricsDomain, "resource_get", start, err)
	return resource, err
}

func (r *resourceUseCaseWithMetrics) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Resource, error) {
	start := time.Now()
	resources, err := r.next.List(ctx, filter)
	metrics.Observe(ctx, r.metrics, metricsDomain, "resource_list", start, err)
	return resources, err
}

func (r *resourceUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateResourceInput,
) (*domain.Resource, error) {
	start := time.Now()
	resource, err := r.next.Update(ctx, id, input)
	metrics.Observe(ctx, r.metrics, metricsDomain, "resource_update", start, err)
	return resource, err
}

func (r *resourceUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := r.next.Delete(ctx, id)
	metrics.Observe(ctx, r.metrics, metricsDomain, "resource_delete", start, err)
	return err
}

func (r *resourceUseCaseWithMetrics) Download(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	start := time.Now()
	resource, err := r.next.Download(ctx, id)
	metrics.Observe(ctx, r.metrics, metricsDomain, "resource_download", start, err)
	return resource, err
}
