package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/metrics"
	"github.com/allisson/campus/internal/notification/domain"
)

const metricsDomain = "notifications"

// notificationUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type notificationUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewNotificationUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewNotificationUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &notificationUseCaseWithMetrics{next: useCase, metrics: m}
}

func (n *notificationUseCaseWithMetrics) Send(ctx context.Context, input *domain.SendInput) (int, error) {
	start := time.Now()
	sent, err := n.next.Send(ctx, input)
	metrics.Observe(ctx, n.metrics, metricsDomain, "notification_send", start, err)
	return sent, err
}

func (n *notificationUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	start := time.Now()
	notification, err := n.next.Get(ctx, id)
	metrics.Observe(ctx, n.metrics, metricsDomain, "notification_get", start, err)
	return notification, err
}

func (n *notificationUseCaseWithMetrics) ListOwn(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Notification, error) {
	start := time.Now()
	notifications, err := n.next.ListOwn(ctx, userID, offset, limit)
	metrics.Observe(ctx, n.metrics, metricsDomain, "notification_list_own", start, err)
	return notifications, err
}

func (n *notificationUseCaseWithMetrics) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	start := time.Now()
	count, err := n.next.CountUnread(ctx, userID)
	metrics.Observe(ctx, n.metrics, metricsDomain, "notification_count_unread", start, err)
	return count, err
}

func (n *notificationUseCaseWithMetrics) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	start := time.Now()
	notification, err := n.next.MarkRead(ctx, id)
	metrics.Observe(ctx, n.metrics, metricsDomain, "notification_mark_read", start, err)
	return notification, err
}

func (n *notificationUseCaseWithMetrics) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	start := time.Now()
	updated, err := n.next.MarkAllRead(ctx, userID)
	metrics.Observe(ctx, n.metrics, metricsDomain, "notification_mark_all_read", start, err)
	return updated, err
}

func (n *notificationUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := n.next.Delete(ctx, id)
	metrics.Observe(ctx, n.metrics, metricsDomain, "notification_delete", start, err)
	return err
}
