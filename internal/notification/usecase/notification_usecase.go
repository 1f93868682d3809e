package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/database"
	"github.com/allisson/campus/internal/notification/domain"
)

type notificationUseCase struct {
	txManager        database.TxManager
	notificationRepo NotificationRepository
	recipients       RecipientLister
}

func (n *notificationUseCase) Send(ctx context.Context, input *domain.SendInput) (int, error) {
	typ := input.Type
	if typ == "" {
		typ = domain.TypeInfo
	}
	if !typ.Valid() {
		return 0, domain.ErrInvalidType
	}

	var sent int
	err := n.txManager.WithTx(ctx, func(ctx context.Context) error {
		userIDs := input.UserIDs
		if len(userIDs) == 0 {
			var err error
			if userIDs, err = n.recipients.ListIDs(ctx); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		seen := make(map[uuid.UUID]struct{}, len(userIDs))
		for _, userID := range userIDs {
			if _, dup := seen[userID]; dup {
				continue
			}
			seen[userID] = struct{}{}

			if err := n.notificationRepo.Create(ctx, domain.New(userID, typ, input.Title, input.Message, now)); err != nil {
				return err
			}
		}
		sent = len(seen)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

func (n *notificationUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	return n.notificationRepo.Get(ctx, id)
}

func (n *notificationUseCase) ListOwn(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Notification, error) {
	return n.notificationRepo.ListByUser(ctx, userID, offset, limit)
}

func (n *notificationUseCase) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return n.notificationRepo.CountUnread(ctx, userID)
}

// MarkRead keeps the first read_at of an already read notification.
func (n *notificationUseCase) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	now := time.Now().UTC()
	if err := n.notificationRepo.MarkRead(ctx, id, now); err != nil {
		return nil, err
	}
	return n.notificationRepo.Get(ctx, id)
}

func (n *notificationUseCase) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return n.notificationRepo.MarkAllRead(ctx, userID, time.Now().UTC())
}

func (n *notificationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return n.notificationRepo.Delete(ctx, id)
}

// NewNotificationUseCase creates a new UseCase with the provided dependencies.
func NewNotificationUseCase(
	txManager database.TxManager,
	notificationRepo NotificationRepository,
	recipients RecipientLister,
) UseCase {
	return &notificationUseCase{
		txManager:        txManager,
		notificationRepo: notificationRepo,
		recipients:       recipients,
	}
}
