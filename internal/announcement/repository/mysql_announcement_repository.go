package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/announcement/domain"
	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
)

// MySQLAnnouncementRepository handles announcement persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLAnnouncementRepository struct {
	db *sql.DB
}

// NewMySQLAnnouncementRepository creates a new MySQLAnnouncementRepository.
func NewMySQLAnnouncementRepository(db *sql.DB) *MySQLAnnouncementRepository {
	return &MySQLAnnouncementRepository{db: db}
}

// Create inserts a new announcement.
func (r *MySQLAnnouncementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO announcements (id, title, content, priority, category, author_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(announcement.ID),
		announcement.Title,
		announcement.Content,
		announcement.Priority,
		announcement.Category,
		database.UUIDBytes(announcement.AuthorID),
		announcement.CreatedAt,
		announcement.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create announcement")
	}
	return nil
}

// Get retrieves an announcement with its author name.
func (r *MySQLAnnouncementRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	querier := database.GetTx(ctx, r.db)
	return getAnnouncement(querier.QueryRowContext(ctx, announcementSelect+` WHERE a.id = ?`, database.UUIDBytes(id)))
}

// List retrieves announcements newest first, optionally restricted to category.
func (r *MySQLAnnouncementRepository) List(ctx context.Context, category string) ([]*domain.Announcement, error) {
	querier := database.GetTx(ctx, r.db)

	query := announcementSelect + ` WHERE (? = '' OR a.category = ?) ORDER BY a.created_at DESC`
	return collectAnnouncements(querier.QueryContext(ctx, query, category, category))
}

// Update writes every mutable field of announcement.
func (r *MySQLAnnouncementRepository) Update(ctx context.Context, announcement *domain.Announcement) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE announcements SET title = ?, content = ?, priority = ?, category = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		announcement.Title,
		announcement.Content,
		announcement.Priority,
		announcement.Category,
		announcement.UpdatedAt,
		database.UUIDBytes(announcement.ID),
	)
	return expectOneRow(result, err, "failed to update announcement")
}

// Delete removes an announcement.
func (r *MySQLAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM announcements WHERE id = ?`, database.UUIDBytes(id))
	return expectOneRow(result, err, "failed to delete announcement")
}
