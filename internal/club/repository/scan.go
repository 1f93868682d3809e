// Package repository provides the PostgreSQL and MySQL club stores.
package repository

import (
	"database/sql"
	"errors"

	"github.com/allisson/campus/internal/club/domain"
	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
)

// The selects below use no placeholders and are shared by both dialects.
const clubSelect = `SELECT c.id, c.name, c.description, c.category, c.president_id, COALESCE(u.name, ''),
		(SELECT COUNT(*) FROM club_memberships m WHERE m.club_id = c.id),
		c.created_at, c.updated_at
	FROM clubs c LEFT JOIN users u ON u.id = c.president_id`

const membershipSelect = `SELECT m.id, m.club_id, c.name, c.category, m.user_id,
		COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.role, ''), m.joined_at
	FROM club_memberships m
	JOIN clubs c ON c.id = m.club_id
	LEFT JOIN users u ON u.id = m.user_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClub(row rowScanner) (*domain.Club, error) {
	var c domain.Club
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Category,
		&c.PresidentID,
		&c.PresidentName,
		&c.MemberCount,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanMembership(row rowScanner) (*domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(
		&m.ID,
		&m.ClubID,
		&m.ClubName,
		&m.ClubCategory,
		&m.UserID,
		&m.UserName,
		&m.UserEmail,
		&m.UserRole,
		&m.JoinedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func getClub(row rowScanner) (*domain.Club, error) {
	club, err := scanClub(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get club")
	}
	return club, nil
}

func getMembership(row rowScanner) (*domain.Membership, error) {
	membership, err := scanMembership(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get membership")
	}
	return membership, nil
}

func collectClubs(rows *sql.Rows, err error) ([]*domain.Club, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clubs")
	}
	defer func() {
		_ = rows.Close()
	}()

	clubs := make([]*domain.Club, 0)
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan club row")
		}
		clubs = append(clubs, club)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating club rows")
	}
	return clubs, nil
}

func collectMemberships(rows *sql.Rows, err error) ([]*domain.Membership, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list memberships")
	}
	defer func() {
		_ = rows.Close()
	}()

	memberships := make([]*domain.Membership, 0)
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan membership row")
		}
		memberships = append(memberships, membership)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating membership rows")
	}
	return memberships, nil
}

func membershipError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return domain.ErrAlreadyMember
	case database.IsForeignKeyViolation(err):
		return domain.ErrClubNotFound
	default:
		return apperrors.Wrap(err, "failed to create membership")
	}
}

// expectOneRow returns notFound when the statement matched no rows.
func expectOneRow(result sql.Result, err error, failure string, notFound error) error {
	if err != nil {
		return apperrors.Wrap(err, failure)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
