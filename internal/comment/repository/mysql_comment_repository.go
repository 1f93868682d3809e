package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/comment/domain"
	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
)

// MySQLCommentRepository handles comment persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLCommentRepository struct {
	db *sql.DB
}

// NewMySQLCommentRepository creates a new MySQLCommentRepository.
func NewMySQLCommentRepository(db *sql.DB) *MySQLCommentRepository {
	return &MySQLCommentRepository{db: db}
}

// Create inserts a comment.
func (r *MySQLCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO comments (id, item_type, item_id, user_id, user_email, user_name, user_role, comment, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(c.ID),
		c.ItemType,
		database.UUIDBytes(c.ItemID),
		database.UUIDBytes(c.UserID),
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
func (r *MySQLCommentRepository) ListByItem(
	ctx context.Context,
	itemType domain.ItemType,
	itemID uuid.UUID,
) ([]*domain.Comment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, item_type, item_id, user_id, user_email, user_name, user_role, comment, created_at
			  FROM comments WHERE item_type = ? AND item_id = ? ORDER BY created_at ASC`
	return collectComments(querier.QueryContext(ctx, query, itemType, database.UUIDBytes(itemID)))
}

// Delete removes a comment.
func (r *MySQLCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, database.UUIDBytes(id))
	return expectOneRow(result, err, "failed to delete comment")
}
