// Package repository provides the PostgreSQL and MySQL event stores.
package repository

import (
	"database/sql"
	"errors"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/event/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.StartDate,
		&e.EndDate,
		&e.Location,
		&e.Category,
		&e.MaxAttendees,
		&e.OrganizerID,
		&e.OrganizerName,
		&e.RegistrationCount,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	var r domain.Registration
	err := row.Scan(
		&r.ID,
		&r.EventID,
		&r.EventTitle,
		&r.EventStartDate,
		&r.EventLocation,
		&r.UserID,
		&r.UserName,
		&r.UserEmail,
		&r.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func getEvent(row rowScanner) (*domain.Event, error) {
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get event")
	}
	return event, nil
}

func collectEvents(rows *sql.Rows, err error) ([]*domain.Event, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list events")
	}
	defer func() {
		_ = rows.Close()
	}()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan event row")
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating event rows")
	}
	return events, nil
}

func collectRegistrations(rows *sql.Rows, err error) ([]*domain.Registration, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list registrations")
	}
	defer func() {
		_ = rows.Close()
	}()

	registrations := make([]*domain.Registration, 0)
	for rows.Next() {
		registration, err := scanRegistration(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan registration row")
		}
		registrations = append(registrations, registration)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating registration rows")
	}
	return registrations, nil
}

func registrationError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return domain.ErrAlreadyRegistered
	case database.IsForeignKeyViolation(err):
		return domain.ErrEventNotFound
	default:
		return apperrors.Wrap(err, "failed to create registration")
	}
}

func expectOneRow(result sql.Result, err error, failure string) error {
	if err != nil {
		return apperrors.Wrap(err, failure)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
