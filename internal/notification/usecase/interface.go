// Package usecase implements notification delivery and the per-user inbox.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/notification/domain"
)

// NotificationRepository persists notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Notification, error)

	// ListByUser returns the user's notifications newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Notification, error)

	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error

	// MarkAllRead marks the user's unread notifications and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

// RecipientLister resolves a broadcast to user ids.
type RecipientLister interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// UseCase defines notification operations.
type UseCase interface {
	// Send creates one notification per recipient in a single transaction and
	// returns the recipient count.
	Send(ctx context.Context, input *domain.SendInput) (int, error)

	Get(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListOwn(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
