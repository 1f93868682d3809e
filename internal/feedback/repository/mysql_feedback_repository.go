package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/feedback/domain"
)

// MySQLFeedbackRepository handles feedback persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLFeedbackRepository struct {
	db *sql.DB
}

// NewMySQLFeedbackRepository creates a new MySQLFeedbackRepository.
func NewMySQLFeedbackRepository(db *sql.DB) *MySQLFeedbackRepository {
	return &MySQLFeedbackRepository{db: db}
}

// Create inserts new feedback.
func (r *MySQLFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO feedback (id, user_id, email, category, message, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(feedback.ID),
		database.NullUUIDBytes(feedback.UserID),
		nullString(feedback.Email),
		feedback.Category,
		feedback.Message,
		feedback.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create feedback")
	}
	return nil
}

// List returns all feedback newest first.
func (r *MySQLFeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	querier := database.GetTx(ctx, r.db)
	return collectFeedback(querier.QueryContext(ctx, feedbackSelect))
}
