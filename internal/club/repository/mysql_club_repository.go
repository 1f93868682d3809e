package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/club/domain"
	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
)

// MySQLClubRepository handles club persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLClubRepository struct {
	db *sql.DB
}

// NewMySQLClubRepository creates a new MySQLClubRepository.
func NewMySQLClubRepository(db *sql.DB) *MySQLClubRepository {
	return &MySQLClubRepository{db: db}
}

// Create inserts a new club.
func (r *MySQLClubRepository) Create(ctx context.Context, club *domain.Club) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO clubs (id, name, description, category, president_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(club.ID),
		club.Name,
		club.Description,
		club.Category,
		database.UUIDBytes(club.PresidentID),
		club.CreatedAt,
		club.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create club")
	}
	return nil
}

// Get retrieves a club with its president name and member count.
func (r *MySQLClubRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	querier := database.GetTx(ctx, r.db)
	return getClub(querier.QueryRowContext(ctx, clubSelect+` WHERE c.id = ?`, database.UUIDBytes(id)))
}

// List retrieves every club ordered by name.
func (r *MySQLClubRepository) List(ctx context.Context) ([]*domain.Club, error) {
	querier := database.GetTx(ctx, r.db)
	return collectClubs(querier.QueryContext(ctx, clubSelect+` ORDER BY c.name ASC`))
}

// Update writes every mutable field of club.
func (r *MySQLClubRepository) Update(ctx context.Context, club *domain.Club) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE clubs SET name = ?, description = ?, category = ?, president_id = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		club.Name,
		club.Description,
		club.Category,
		database.UUIDBytes(club.PresidentID),
		club.UpdatedAt,
		database.UUIDBytes(club.ID),
	)
	return expectOneRow(result, err, "failed to update club", domain.ErrClubNotFound)
}

// Delete removes a club. Memberships are removed by cascade.
func (r *MySQLClubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM clubs WHERE id = ?`, database.UUIDBytes(id))
	return expectOneRow(result, err, "failed to delete club", domain.ErrClubNotFound)
}

// CreateMembership inserts a membership. Joining twice yields ErrAlreadyMember.
func (r *MySQLClubRepository) CreateMembership(ctx context.Context, membership *domain.Membership) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO club_memberships (id, club_id, user_id, joined_at) VALUES (?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(membership.ID),
		database.UUIDBytes(membership.ClubID),
		database.UUIDBytes(membership.UserID),
		membership.JoinedAt,
	)
	if err != nil {
		return membershipError(err)
	}
	return nil
}

// GetMembership retrieves a membership by id.
func (r *MySQLClubRepository) GetMembership(ctx context.Context, id uuid.UUID) (*domain.Membership, error) {
	querier := database.GetTx(ctx, r.db)
	return getMembership(querier.QueryRowContext(ctx, membershipSelect+` WHERE m.id = ?`, database.UUIDBytes(id)))
}

// DeleteMembership removes a membership by id.
func (r *MySQLClubRepository) DeleteMembership(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM club_memberships WHERE id = ?`, database.UUIDBytes(id))
	return expectOneRow(result, err, "failed to delete membership", domain.ErrMembershipNotFound)
}

// DeleteUserMembership removes userID from clubID.
func (r *MySQLClubRepository) DeleteUserMembership(ctx context.Context, clubID, userID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`DELETE FROM club_memberships WHERE club_id = ? AND user_id = ?`,
		database.UUIDBytes(clubID), database.UUIDBytes(userID))
	return expectOneRow(result, err, "failed to leave club", domain.ErrNotMember)
}

// ListMembers returns the roster of a club, newest member first.
func (r *MySQLClubRepository) ListMembers(ctx context.Context, clubID uuid.UUID) ([]*domain.Membership, error) {
	querier := database.GetTx(ctx, r.db)

	query := membershipSelect + ` WHERE m.club_id = ? ORDER BY m.joined_at DESC`
	return collectMemberships(querier.QueryContext(ctx, query, database.UUIDBytes(clubID)))
}

// ListUserMemberships returns the clubs userID joined, most recent first.
func (r *MySQLClubRepository) ListUserMemberships(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Membership, error) {
	querier := database.GetTx(ctx, r.db)

	query := membershipSelect + ` WHERE m.user_id = ? ORDER BY m.joined_at DESC`
	return collectMemberships(querier.QueryContext(ctx, query, database.UUIDBytes(userID)))
}
