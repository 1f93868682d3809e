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

// MySQLRequestRepository handles request persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLRequestRepository struct {
	db *sql.DB
}

// NewMySQLRequestRepository creates a new MySQLRequestRepository.
func NewMySQLRequestRepository(db *sql.DB) *MySQLRequestRepository {
	return &MySQLRequestRepository{db: db}
}

// Create inserts a request.
func (r *MySQLRequestRepository) Create(ctx context.Context, request *domain.Request) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO requests (` + requestColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(request.ID),
		request.Type,
		request.Name,
		request.Description,
		request.Date,
		nullRole(request.RequestedRole),
		database.UUIDBytes(request.RequestedBy),
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
func (r *MySQLRequestRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = ?`
	return getRequest(querier.QueryRowContext(ctx, query, database.UUIDBytes(id)))
}

// List returns requests with the given status newest first.
func (r *MySQLRequestRepository) List(ctx context.Context, status domain.Status) ([]*domain.Request, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM requests WHERE status = ? ORDER BY created_at DESC`
	return collectRequests(querier.QueryContext(ctx, query, status))
}

// Transition moves a pending request to status.
func (r *MySQLRequestRepository) Transition(
	ctx context.Context,
	id uuid.UUID,
	status domain.Status,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE requests SET status = ?, updated_at = ? WHERE id = ? AND status = 'pending'`

	result, err := querier.ExecContext(ctx, query, status, updatedAt, database.UUIDBytes(id))
	return expectTransition(result, err)
}
