package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/resource/domain"
)

// MySQLResourceRepository handles resource persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLResourceRepository struct {
	db *sql.DB
}

// NewMySQLResourceRepository creates a new MySQLResourceRepository.
func NewMySQLResourceRepository(db *sql.DB) *MySQLResourceRepository {
	return &MySQLResourceRepository{db: db}
}

// Create inserts a new resource with a zero download count.
func (r *MySQLResourceRepository) Create(ctx context.Context, resource *domain.Resource) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO resources (id, title, description, category, file_url, file_type, file_size,
				download_count, uploader_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(resource.ID),
		resource.Title,
		resource.Description,
		resource.Category,
		resource.FileURL,
		resource.FileType,
		resource.FileSize,
		database.UUIDBytes(resource.UploaderID),
		resource.CreatedAt,
		resource.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create resource")
	}
	return nil
}

// Get retrieves a resource with its uploader name.
func (r *MySQLResourceRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	querier := database.GetTx(ctx, r.db)
	return getResource(querier.QueryRowContext(ctx, resourceSelect+` WHERE r.id = ?`, database.UUIDBytes(id)))
}

// List retrieves resources newest first, filtered by category and search text.
func (r *MySQLResourceRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Resource, error) {
	querier := database.GetTx(ctx, r.db)

	pattern := filter.SearchPattern()
	query := resourceSelect + ` WHERE (? = '' OR r.category = ?)
		AND (? = '' OR LOWER(r.title) LIKE ? OR LOWER(r.description) LIKE ?)
		ORDER BY r.created_at DESC`
	return collectResources(querier.QueryContext(ctx, query,
		filter.Category, filter.Category, pattern, pattern, pattern))
}

// Update writes every mutable field of resource.
func (r *MySQLResourceRepository) Update(ctx context.Context, resource *domain.Resource) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE resources SET title = ?, description = ?, category = ?, file_url = ?,
				file_type = ?, file_size = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		resource.Title,
		resource.Description,
		resource.Category,
		resource.FileURL,
		resource.FileType,
		resource.FileSize,
		resource.UpdatedAt,
		database.UUIDBytes(resource.ID),
	)
	return expectOneRow(result, err, "failed to update resource")
}

// Delete removes a resource.
func (r *MySQLResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM resources WHERE id = ?`, database.UUIDBytes(id))
	return expectOneRow(result, err, "failed to delete resource")
}

// IncrementDownloads adds one to download_count.
func (r *MySQLResourceRepository) IncrementDownloads(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE resources SET download_count = download_count + 1 WHERE id = ?`, database.UUIDBytes(id))
	return expectOneRow(result, err, "failed to count download")
}
