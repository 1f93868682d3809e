package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/metrics"
	"github.com/allisson/campus/internal/request/domain"
)

const metricsDomain = "requests"

// requestUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type requestUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewRequestUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewRequestUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &requestUseCaseWithMetrics{next: useCase, metrics: m}
}

func (r *requestUseCaseWithMetrics) Create(
	ctx context.Context,
	requester *authDomain.Principal,
	input *domain.CreateRequestInput,
) (*domain.Request, error) {
	start := time.Now()
	request, err := r.next.Create(ctx, requester, input)
	metrics.Observe(ctx, r.metrics, metricsDomain, "request_create", start, err)
	return request, err
}

func (r *requestUseCaseWithMetrics) List(ctx context.Context, status domain.Status) ([]*domain.Request, error) {
	start := time.Now()
	requests, err := r.next.List(ctx, status)
	metrics.Observe(ctx, r.metrics, metricsDomain, "request_list", start, err)
	return requests, err
}

func (r *requestUseCaseWithMetrics) Decide(
	ctx context.Context,
	id uuid.UUID,
	decision domain.Decision,
) (*domain.Request, error) {
	start := time.Now()
	request, err := r.next.Decide(ctx, id, decision)
	metrics.Observe(ctx, r.metrics, metricsDomain, "request_"+string(decision.Status), start, err)
	return request, err
}
