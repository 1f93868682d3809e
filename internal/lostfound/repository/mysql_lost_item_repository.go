package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/lostfound/domain"
)

// MySQLLostItemRepository handles lost-and-found persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLLostItemRepository struct {
	db *sql.DB
}

// NewMySQLLostItemRepository creates a new MySQLLostItemRepository.
func NewMySQLLostItemRepository(db *sql.DB) *MySQLLostItemRepository {
	return &MySQLLostItemRepository{db: db}
}

// Create inserts a new report.
func (r *MySQLLostItemRepository) Create(ctx context.Context, item *domain.LostItem) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO lost_items (id, item, location, description, status, reporter_email, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(item.ID),
		item.Item,
		item.Location,
		item.Description,
		item.Status,
		item.ReporterEmail,
		item.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create lost item")
	}
	return nil
}

// List returns every report newest first.
func (r *MySQLLostItemRepository) List(ctx context.Context) ([]*domain.LostItem, error) {
	querier := database.GetTx(ctx, r.db)
	return collectLostItems(querier.QueryContext(ctx, lostItemSelect))
}
