// Package repository provides the PostgreSQL and MySQL notification stores.
package repository

import (
	"database/sql"
	"errors"

	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/notification/domain"
)

const notificationColumns = `id, user_id, type, title, message, is_read, created_at, read_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.IsRead,
		&n.CreatedAt,
		&n.ReadAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func getNotification(row rowScanner) (*domain.Notification, error) {
	n, err := scanNotification(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get notification")
	}
	return n, nil
}

func collectNotifications(rows *sql.Rows, err error) ([]*domain.Notification, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notifications")
	}
	defer func() {
		_ = rows.Close()
	}()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan notification row")
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating notification rows")
	}
	return notifications, nil
}

func expectOneRow(result sql.Result, err error, failure string) error {
	if err != nil {
		return apperrors.Wrap(err, failure)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
