package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/notification/domain"
)

// MySQLNotificationRepository handles notification persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLNotificationRepository struct {
	db *sql.DB
}

// NewMySQLNotificationRepository creates a new MySQLNotificationRepository.
func NewMySQLNotificationRepository(db *sql.DB) *MySQLNotificationRepository {
	return &MySQLNotificationRepository{db: db}
}

// Create inserts a notification.
func (r *MySQLNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO notifications (id, user_id, type, title, message, is_read, created_at, read_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(n.ID),
		database.UUIDBytes(n.UserID),
		n.Type,
		n.Title,
		n.Message,
		n.IsRead,
		n.CreatedAt,
		n.ReadAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create notification")
	}
	return nil
}

// Get retrieves a notification by id.
func (r *MySQLNotificationRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = ?`
	return getNotification(querier.QueryRowContext(ctx, query, database.UUIDBytes(id)))
}

// ListByUser returns the user's notifications newest first.
func (r *MySQLNotificationRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Notification, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + notificationColumns + ` FROM notifications
			  WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	return collectNotifications(querier.QueryContext(ctx, query, database.UUIDBytes(userID), limit, offset))
}

// CountUnread counts the user's unread notifications.
func (r *MySQLNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, r.db)

	var count int
	err := querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = FALSE`,
		database.UUIDBytes(userID)).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count unread notifications")
	}
	return count, nil
}

// MarkRead sets is_read and the first read_at. MySQL reports zero affected rows
// for an already read notification, so existence is checked by the caller.
func (r *MySQLNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = COALESCE(read_at, ?) WHERE id = ?`,
		readAt, database.UUIDBytes(id))
	if err != nil {
		return apperrors.Wrap(err, "failed to mark notification read")
	}
	return nil
}

// MarkAllRead marks the user's unread notifications and returns how many changed.
func (r *MySQLNotificationRepository) MarkAllRead(
	ctx context.Context,
	userID uuid.UUID,
	readAt time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = ? WHERE user_id = ? AND is_read = FALSE`,
		readAt, database.UUIDBytes(userID))
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to mark notifications read")
	}
	return result.RowsAffected()
}

// Delete removes a notification.
func (r *MySQLNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM notifications WHERE id = ?`, database.UUIDBytes(id))
	return expectOneRow(result, err, "failed to delete notification")
}
