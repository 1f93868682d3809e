// Package repository provides the PostgreSQL and MySQL feedback stores.
package repository

import (
	"database/sql"

	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/feedback/domain"
)

const feedbackSelect = `SELECT id, user_id, email, category, message, created_at
	FROM feedback ORDER BY created_at DESC`

// nullString stores an empty email as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func collectFeedback(rows *sql.Rows, err error) ([]*domain.Feedback, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list feedback")
	}
	defer func() {
		_ = rows.Close()
	}()

	all := make([]*domain.Feedback, 0)
	for rows.Next() {
		var f domain.Feedback
		var email sql.NullString
		if err := rows.Scan(&f.ID, &f.UserID, &email, &f.Category, &f.Message, &f.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan feedback row")
		}
		f.Email = email.String
		all = append(all, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating feedback rows")
	}
	return all, nil
}
