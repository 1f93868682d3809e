package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/comment/domain"
	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
)

// PostgreSQLCommentRepository handles comment persistence for PostgreSQL.
type PostgreSQLCommentRepository struct {
	db *sql.DB
}

// NewPostgreSQLCommentRepository creates a new PostgreSQLCommentRepository.
func NewPostgreSQLCommentRepository(db *sql.DB) *PostgreSQLCommentRepository {
	return &PostgreSQLCommentRepository{db: db}
}

// Create inserts a comment.
func (r *PostgreSQLCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO comments (id, item_type, item_id, user_id, user_email, user_name, user_role, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(ctx, query,
		c.ID,
		c.ItemType,
		c.ItemID,
		c.UserID,
		c.UserEmail,
		c.UserName,
		c.UserRole,
		c.Body,
		c.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create comment")
	}
	return nil
}

// ListByItem returns an item's comments oldest first.
func (r *PostgreSQLCommentRepository) ListByItem(
	ctx context.Context,
	itemType domain.ItemType,
	itemID uuid.UUID,
) ([]*domain.Comment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, item_type, item_id, user_id, user_email, user_name, user_role, comment, created_at
			  FROM comments WHERE item_type = $1 AND item_id = $2 ORDER BY created_at ASC`
	return collectComments(querier.QueryContext(ctx, query, itemType, itemID))
}

// Delete removes a comment.
func (r *PostgreSQLCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return expectOneRow(result, err, "failed to delete comment")
}
