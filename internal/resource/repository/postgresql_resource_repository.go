package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/resource/domain"
)

// PostgreSQLResourceRepository handles resource persistence for PostgreSQL.
type PostgreSQLResourceRepository struct {
	db *sql.DB
}

// NewPostgreSQLResourceRepository creates a new PostgreSQLResourceRepository.
func NewPostgreSQLResourceRepository(db *sql.DB) *PostgreSQLResourceRepository {
	return &PostgreSQLResourceRepository{db: db}
}

// Create inserts a new resource with a zero download count.
func (r *PostgreSQLResourceRepository) Create(ctx context.Context, resource *domain.Resource) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO resources (id, title, description, category, file_url, file_type, file_size,
				download_count, uploader_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10)`

	_, err := querier.ExecContext(ctx, query,
		resource.ID,
		resource.Title,
		resource.Description,
		resource.Category,
		resource.FileURL,
		resource.FileType,
		resource.FileSize,
		resource.UploaderID,
		resource.CreatedAt,
		resource.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create resource")
	}
	return nil
}

// Get retrieves a resource with its uploader name.
func (r *PostgreSQLResourceRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	querier := database.GetTx(ctx, r.db)
	return getResource(querier.QueryRowContext(ctx, resourceSelect+` WHERE r.id = $1`, id))
}

// List retrieves resources newest first, filtered by category and search text.
func (r *PostgreSQLResourceRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
) ([]*domain.Resource, error) {
	querier := database.GetTx(ctx, r.db)

	query := resourceSelect + ` WHERE ($1 = '' OR r.category = $1)
		AND ($2 = '' OR LOWER(r.title) LIKE $2 OR LOWER(r.description) LIKE $2)
		ORDER BY r.created_at DESC`
	return collectResources(querier.QueryContext(ctx, query, filter.Category, filter.SearchPattern()))
}

// Update writes every mutable field of resource.
func (r *PostgreSQLResourceRepository) Update(ctx context.Context, resource *domain.Resource) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE resources SET title = $1, description = $2, category = $3, file_url = $4,
				file_type = $5, file_size = $6, updated_at = $7
			  WHERE id = $8`

	result, err := querier.ExecContext(ctx, query,
		resource.Title,
		resource.Description,
		resource.Category,
		resource.FileURL,
		resource.FileType,
		resource.FileSize,
		resource.UpdatedAt,
		resource.ID,
	)
	return expectOneRow(result, err, "failed to update resource")
}

// Delete removes a resource.
func (r *PostgreSQLResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	return expectOneRow(result, err, "failed to delete resource")
}

// IncrementDownloads adds one to download_count.
func (r *PostgreSQLResourceRepository) IncrementDownloads(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE resources SET download_count = download_count + 1 WHERE id = $1`, id)
	return expectOneRow(result, err, "failed to count download")
}
