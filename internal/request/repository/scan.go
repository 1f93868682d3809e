// Package repository provides the PostgreSQL and MySQL request stores.
package repository

import (
	"database/sql"
	"errors"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/request/domain"
)

const requestColumns = `id, type, name, description, date, requested_role, requested_by, requester_email,
		status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// nullRole stores an empty role as NULL.
func nullRole(role authDomain.Role) sql.NullString {
	return sql.NullString{String: string(role), Valid: role != ""}
}

func scanRequest(row rowScanner) (*domain.Request, error) {
	var r domain.Request
	var requestedRole sql.NullString
	err := row.Scan(
		&r.ID,
		&r.Type,
		&r.Name,
		&r.Description,
		&r.Date,
		&requestedRole,
		&r.RequestedBy,
		&r.RequesterEmail,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.RequestedRole = authDomain.Role(requestedRole.String)
	return &r, nil
}

func getRequest(row rowScanner) (*domain.Request, error) {
	request, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get request")
	}
	return request, nil
}

func collectRequests(rows *sql.Rows, err error) ([]*domain.Request, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list requests")
	}
	defer func() {
		_ = rows.Close()
	}()

	requests := make([]*domain.Request, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan request row")
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating request rows")
	}
	return requests, nil
}

// expectTransition maps a conditional status update that touched no row to
// domain.ErrAlreadyProcessed.
func expectTransition(result sql.Result, err error) error {
	if err != nil {
		return apperrors.Wrap(err, "failed to update request status")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}
