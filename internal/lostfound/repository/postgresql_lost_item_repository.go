package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/lostfound/domain"
)

// PostgreSQLLostItemRepository handles lost-and-found persistence for PostgreSQL.
type PostgreSQLLostItemRepository struct {
	db *sql.DB
}

// NewPostgreSQLLostItemRepository creates a new PostgreSQLLostItemRepository.
func NewPostgreSQLLostItemRepository(db *sql.DB) *PostgreSQLLostItemRepository {
	return &PostgreSQLLostItemRepository{db: db}
}

// Create inserts a new report.
func (r *PostgreSQLLostItemRepository) Create(ctx context.Context, item *domain.LostItem) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO lost_items (id, item, location, description, status, reporter_email, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query,
		item.ID,
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
func (r *PostgreSQLLostItemRepository) List(ctx context.Context) ([]*domain.LostItem, error) {
	querier := database.GetTx(ctx, r.db)
	return collectLostItems(querier.QueryContext(ctx, lostItemSelect))
}
