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

// PostgreSQLNotificationRepository handles notification persistence for PostgreSQL.
type PostgreSQLNotificationRepository struct {
	db *sql.DB
}

// NewPostgreSQLNotificationRepository creates a new PostgreSQLNotificationRepository.
func NewPostgreSQLNotificationRepository(db *sql.DB) *PostgreSQLNotificationRepository {
	return &PostgreSQLNotificationRepository{db: db}
}

// Create inserts a notification.
func (r *PostgreSQLNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO notifications (id, user_id, type, title, message, is_read, created_at, read_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(ctx, query,
		n.ID,
		n.UserID,
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
func (r *PostgreSQLNotificationRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	return getNotification(querier.QueryRowContext(ctx, query, id))
}

// ListByUser returns the user's notifications newest first.
func (r *PostgreSQLNotificationRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Notification, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + notificationColumns + ` FROM notifications
			  WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	return collectNotifications(querier.QueryContext(ctx, query, userID, limit, offset))
}

// CountUnread counts the user's unread notifications.
func (r *PostgreSQLNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, r.db)

	var count int
	err := querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count unread notifications")
	}
	return count, nil
}

// MarkRead sets is_read and the first read_at.
func (r *PostgreSQLNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = COALESCE(read_at, $1) WHERE id = $2`, readAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark notification read")
	}
	return nil
}

// MarkAllRead marks the user's unread notifications and returns how many changed.
func (r *PostgreSQLNotificationRepository) MarkAllRead(
	ctx context.Context,
	userID uuid.UUID,
	readAt time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = $1 WHERE user_id = $2 AND is_read = FALSE`,
		readAt, userID)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to mark notifications read")
	}
	return result.RowsAffected()
}

// Delete removes a notification.
func (r *PostgreSQLNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	return expectOneRow(result, err, "failed to delete notification")
}
