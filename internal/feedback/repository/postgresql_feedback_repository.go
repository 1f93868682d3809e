package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/feedback/domain"
)

// PostgreSQLFeedbackRepository handles feedback persistence for PostgreSQL.
type PostgreSQLFeedbackRepository struct {
	db *sql.DB
}

// NewPostgreSQLFeedbackRepository creates a new PostgreSQLFeedbackRepository.
func NewPostgreSQLFeedbackRepository(db *sql.DB) *PostgreSQLFeedbackRepository {
	return &PostgreSQLFeedbackRepository{db: db}
}

// Create inserts new feedback.
func (r *PostgreSQLFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO feedback (id, user_id, email, category, message, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(ctx, query,
		feedback.ID,
		feedback.UserID,
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
func (r *PostgreSQLFeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	querier := database.GetTx(ctx, r.db)
	return collectFeedback(querier.QueryContext(ctx, feedbackSelect))
}
