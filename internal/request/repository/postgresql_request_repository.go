package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/request/domain"
)

// PostgreSQLRequestRepository handles request persistence for PostgreSQL.
type PostgreSQLRequestRepository struct {
	db *sql.DB
}

// NewPostgreSQLRequestRepository creates a new PostgreSQLRequestRepository.
func NewPostgreSQLRequestRepository(db *sql.DB) *PostgreSQLRequestRepository {
	return &PostgreSQLRequestRepository{db: db}
}

// Create inserts a request.
func (r *PostgreSQLRequestRepository) Create(ctx context.Context, request *domain.Request) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO requests (` + requestColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.ExecContext(ctx, query,
		request.ID,
		request.Type,
		request.Name,
		request.Description,
		request.Date,
		nullRole(request.RequestedRole),
		request.RequestedBy,
		request.RequesterEmail,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create request")
	}
	return nil
}

// Get retrieves a request by id.
func (r *PostgreSQLRequestRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	return getRequest(querier.QueryRowContext(ctx, query, id))
}

// List returns requests with the given status newest first.
func (r *PostgreSQLRequestRepository) List(ctx context.Context, status domain.Status) ([]*domain.Request, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM requests WHERE status = $1 ORDER BY created_at DESC`
	return collectRequests(querier.QueryContext(ctx, query, status))
}

// Transition moves a pending request to status.
func (r *PostgreSQLRequestRepository) Transition(
	ctx context.Context,
	id uuid.UUID,
	status domain.Status,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = 'pending'`

	result, err := querier.ExecContext(ctx, query, status, updatedAt, id)
	return expectTransition(result, err)
}
