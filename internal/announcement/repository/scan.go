// Package repository provides the PostgreSQL and MySQL announcement stores.
package repository

import (
	"database/sql"
	"errors"

	"github.com/allisson/campus/internal/announcement/domain"
	apperrors "github.com/allisson/campus/internal/errors"
)

const announcementSelect = `SELECT a.id, a.title, a.content, a.priority, a.category, a.author_id,
		COALESCE(u.name, ''), a.created_at, a.updated_at
	FROM announcements a LEFT JOIN users u ON u.id = a.author_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnnouncement(row rowScanner) (*domain.Announcement, error) {
	var a domain.Announcement
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Priority,
		&a.Category,
		&a.AuthorID,
		&a.AuthorName,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func getAnnouncement(row rowScanner) (*domain.Announcement, error) {
	announcement, err := scanAnnouncement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get announcement")
	}
	return announcement, nil
}

func collectAnnouncements(rows *sql.Rows, err error) ([]*domain.Announcement, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list announcements")
	}
	defer func() {
		_ = rows.Close()
	}()

	announcements := make([]*domain.Announcement, 0)
	for rows.Next() {
		announcement, err := scanAnnouncement(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan announcement row")
		}
		announcements = append(announcements, announcement)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating announcement rows")
	}
	return announcements, nil
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
		return domain.ErrAnnouncementNotFound
	}
	return nil
}
