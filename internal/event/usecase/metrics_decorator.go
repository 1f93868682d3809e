package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/event/domain"
	"github.com/allisson/campus/internal/metrics"
)

const metricsDomain = "events"

// eventUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type eventUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewEventUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewEventUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &eventUseCaseWithMetrics{next: useCase, metrics: m}
}

func (e *eventUseCaseWithMetrics) Create(
	ctx context.Context,
	organizerID uuid.UUID,
	input *domain.CreateEventInput,
) (*domain.Event, error) {
	start := time.Now()
	event, err := e.next.Create(ctx, organizerID, input)
	metrics.Observe(ctx, e.metrics, metricsDomain, "event_create", start, err)
	return event, err
}

func (e *eventUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	start := time.Now()
	event, err := e.next.Get(ctx, id)
	metrics.Observe(ctx, e.metrics, metricsDomain, "event_get", start, err)
	return event, err
}

func (e *eventUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Event, error) {
	start := time.Now()
	events, err := e.next.List(ctx)
	metrics.Observe(ctx, e.metrics, metricsDomain, "event_list", start, err)
	return events, err
}

func (e *eventUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateEventInput,
) (*domain.Event, error) {
	start := time.Now()
	event, err := e.next.Update(ctx, id, input)
	metrics.Observe(ctx, e.metrics, metricsDomain, "event_update", start, err)
	return event, err
}

func (e *eventUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := e.next.Delete(ctx, id)
	metrics.Observe(ctx, e.metrics, metricsDomain, "event_delete", start, err)
	return err
}

func (e *eventUseCaseWithMetrics) Register(
	ctx context.Context,
	eventID, userID uuid.UUID,
) (*domain.Registration, error) {
	start := time.Now()
	registration, err := e.next.Register(ctx, eventID, userID)
	metrics.Observe(ctx, e.metrics, metricsDomain, "event_register", start, err)
	return registration, err
}

func (e *eventUseCaseWithMetrics) ListRegistrations(
	ctx context.Context,
	eventID uuid.UUID,
) ([]*domain.Registration, error) {
	start := time.Now()
	registrations, err := e.next.ListRegistrations(ctx, eventID)
	metrics.Observe(ctx, e.metrics, metricsDomain, "event_registration_list", start, err)
	return registrations, err
}

func (e *eventUseCaseWithMetrics) ListUserRegistrations(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Registration, error) {
	start := time.Now()
	registrations, err := e.next.ListUserRegistrations(ctx, userID)
	metrics.Observe(ctx, e.metrics, metricsDomain, "event_registration_list_own", start, err)
	return registrations, err
}
