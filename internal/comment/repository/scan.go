// Package repository provides the PostgreSQL and MySQL comment stores.
package repository

import (
	"database/sql"

	"github.com/allisson/campus/internal/comment/domain"
	apperrors "github.com/allisson/campus/internal/errors"
)

func collectComments(rows *sql.Rows, err error) ([]*domain.Comment, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list comments")
	}
	defer func() {
		_ = rows.Close()
	}()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID,
			&c.ItemType,
			&c.ItemID,
			&c.UserID,
			&c.UserEmail,
			&c.UserName,
			&c.UserRole,
			&c.Body,
			&c.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan comment row")
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating comment rows")
	}
	return comments, nil
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
		return domain.ErrCommentNotFound
	}
	return nil
}
