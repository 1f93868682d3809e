package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/club/domain"
	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
)

// PostgreSQLClubRepository handles club persistence for PostgreSQL.
type PostgreSQLClubRepository struct {
	db *sql.DB
}

// NewPostgreSQLClubRepository creates a new PostgreSQLClubRepository.
func NewPostgreSQLClubRepository(db *sql.DB) *PostgreSQLClubRepository {
	return &PostgreSQLClubRepository{db: db}
}

// Create inserts a new club.
func (r *PostgreSQLClubRepository) Create(ctx context.Context, club *domain.Club) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO clubs (id, name, description, category, president_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query,
		club.ID,
		club.Name,
		club.Description,
		club.Category,
		club.PresidentID,
		club.CreatedAt,
		club.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create club")
	}
	return nil
}

// Get retrieves a club with its president name and member count.
func (r *PostgreSQLClubRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	querier := database.GetTx(ctx, r.db)
	return getClub(querier.QueryRowContext(ctx, clubSelect+` WHERE c.id = $1`, id))
}

// List retrieves every club ordered by name.
func (r *PostgreSQLClubRepository) List(ctx context.Context) ([]*domain.Club, error) {
	querier := database.GetTx(ctx, r.db)
	return collectClubs(querier.QueryContext(ctx, clubSelect+` ORDER BY c.name ASC`))
}

// Update writes every mutable field of club.
func (r *PostgreSQLClubRepository) Update(ctx context.Context, club *domain.Club) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE clubs SET name = $1, description = $2, category = $3, president_id = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(ctx, query,
		club.Name,
		club.Description,
		club.Category,
		club.PresidentID,
		club.UpdatedAt,
		club.ID,
	)
	return expectOneRow(result, err, "failed to update club", domain.ErrClubNotFound)
}

// Delete removes a club. Memberships are removed by cascade.
func (r *PostgreSQLClubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	return expectOneRow(result, err, "failed to delete club", domain.ErrClubNotFound)
}

// CreateMembership inserts a membership. Joining twice yields ErrAlreadyMember.
func (r *PostgreSQLClubRepository) CreateMembership(ctx context.Context, membership *domain.Membership) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO club_memberships (id, club_id, user_id, joined_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query,
		membership.ID,
		membership.ClubID,
		membership.UserID,
		membership.JoinedAt,
	)
	if err != nil {
		return membershipError(err)
	}
	return nil
}

// GetMembership retrieves a membership by id.
func (r *PostgreSQLClubRepository) GetMembership(ctx context.Context, id uuid.UUID) (*domain.Membership, error) {
	querier := database.GetTx(ctx, r.db)
	return getMembership(querier.QueryRowContext(ctx, membershipSelect+` WHERE m.id = $1`, id))
}

// DeleteMembership removes a membership by id.
func (r *PostgreSQLClubRepository) DeleteMembership(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM club_memberships WHERE id = $1`, id)
	return expectOneRow(result, err, "failed to delete membership", domain.ErrMembershipNotFound)
}

// DeleteUserMembership removes userID from clubID.
func (r *PostgreSQLClubRepository) DeleteUserMembership(ctx context.Context, clubID, userID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`DELETE FROM club_memberships WHERE club_id = $1 AND user_id = $2`, clubID, userID)
	return expectOneRow(result, err, "failed to leave club", domain.ErrNotMember)
}

// ListMembers returns the roster of a club, newest member first.
func (r *PostgreSQLClubRepository) ListMembers(ctx context.Context, clubID uuid.UUID) ([]*domain.Membership, error) {
	querier := database.GetTx(ctx, r.db)

	query := membershipSelect + ` WHERE m.club_id = $1 ORDER BY m.joined_at DESC`
	return collectMemberships(querier.QueryContext(ctx, query, clubID))
}

// ListUserMemberships returns the clubs userID joined, most recent first.
func (r *PostgreSQLClubRepository) ListUserMemberships(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Membership, error) {
	querier := database.GetTx(ctx, r.db)

	query := membershipSelect + ` WHERE m.user_id = $1 ORDER BY m.joined_at DESC`
	return collectMemberships(querier.QueryContext(ctx, query, userID))
}
