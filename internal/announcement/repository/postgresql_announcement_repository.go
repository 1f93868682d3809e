package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/announcement/domain"
	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
)

// PostgreSQLAnnouncementRepository handles announcement persistence for PostgreSQL.
type PostgreSQLAnnouncementRepository struct {
	db *sql.DB
}

// NewPostgreSQLAnnouncementRepository creates a new PostgreSQLAnnouncementRepository.
func NewPostgreSQLAnnouncementRepository(db *sql.DB) *PostgreSQLAnnouncementRepository {
	return &PostgreSQLAnnouncementRepository{db: db}
}

// Create inserts a new announcement.
func (r *PostgreSQLAnnouncementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO announcements (id, title, content, priority, category, author_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(ctx, query,
		announcement.ID,
		announcement.Title,
		announcement.Content,
		announcement.Priority,
		announcement.Category,
		announcement.AuthorID,
		announcement.CreatedAt,
		announcement.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create announcement")
	}
	return nil
}

// Get retrieves an announcement with its author name.
func (r *PostgreSQLAnnouncementRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	querier := database.GetTx(ctx, r.db)
	return getAnnouncement(querier.QueryRowContext(ctx, announcementSelect+` WHERE a.id = $1`, id))
}

// List retrieves announcements newest first, optionally restricted to category.
func (r *PostgreSQLAnnouncementRepository) List(
	ctx context.Context,
	category string,
) ([]*domain.Announcement, error) {
	querier := database.GetTx(ctx, r.db)

	query := announcementSelect + ` WHERE ($1 = '' OR a.category = $1) ORDER BY a.created_at DESC`
	return collectAnnouncements(querier.QueryContext(ctx, query, category))
}

// Update writes every mutable field of announcement.
func (r *PostgreSQLAnnouncementRepository) Update(ctx context.Context, announcement *domain.Announcement) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE announcements SET title = $1, content = $2, priority = $3, category = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(ctx, query,
		announcement.Title,
		announcement.Content,
		announcement.Priority,
		announcement.Category,
		announcement.UpdatedAt,
		announcement.ID,
	)
	return expectOneRow(result, err, "failed to update announcement")
}

// Delete removes an announcement.
func (r *PostgreSQLAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	return expectOneRow(result, err, "failed to delete announcement")
}
