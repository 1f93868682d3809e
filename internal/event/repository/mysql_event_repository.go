package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/database"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/event/domain"
)

const mySQLEventSelect = `SELECT e.id, e.title, e.description, e.start_date, e.end_date, e.location,
		e.category, e.max_attendees, e.organizer_id, COALESCE(u.name, ''),
		(SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id),
		e.created_at, e.updated_at
	FROM events e LEFT JOIN users u ON u.id = e.organizer_id`

const mySQLRegistrationSelect = `SELECT r.id, r.event_id, e.title, e.start_date, e.location,
		r.user_id, COALESCE(u.name, ''), COALESCE(u.email, ''), r.registered_at
	FROM event_registrations r
	JOIN events e ON e.id = r.event_id
	LEFT JOIN users u ON u.id = r.user_id`

// MySQLEventRepository handles event persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLEventRepository struct {
	db *sql.DB
}

// NewMySQLEventRepository creates a new MySQLEventRepository.
func NewMySQLEventRepository(db *sql.DB) *MySQLEventRepository {
	return &MySQLEventRepository{db: db}
}

// Create inserts a new event.
func (r *MySQLEventRepository) Create(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO events (id, title, description, start_date, end_date, location, category,
				max_attendees, organizer_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(event.ID),
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Category,
		event.MaxAttendees,
		database.UUIDBytes(event.OrganizerID),
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create event")
	}
	return nil
}

// Get retrieves an event with its organizer name and registration count.
func (r *MySQLEventRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)
	return getEvent(querier.QueryRowContext(ctx, mySQLEventSelect+` WHERE e.id = ?`, database.UUIDBytes(id)))
}

// List retrieves every event ordered by start date.
func (r *MySQLEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)
	return collectEvents(querier.QueryContext(ctx, mySQLEventSelect+` ORDER BY e.start_date ASC`))
}

// Update writes every mutable field of event.
func (r *MySQLEventRepository) Update(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE events SET title = ?, description = ?, start_date = ?, end_date = ?,
				location = ?, category = ?, max_attendees = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Category,
		event.MaxAttendees,
		event.UpdatedAt,
		database.UUIDBytes(event.ID),
	)
	return expectOneRow(result, err, "failed to update event")
}

// Delete removes an event. Registrations are removed by cascade.
func (r *MySQLEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, database.UUIDBytes(id))
	return expectOneRow(result, err, "failed to delete event")
}

// Lock takes a FOR UPDATE lock on the event row.
func (r *MySQLEventRepository) Lock(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	var locked uuid.UUID
	err := querier.
		QueryRowContext(ctx, `SELECT id FROM events WHERE id = ? FOR UPDATE`, database.UUIDBytes(id)).
		Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return apperrors.Wrap(err, "failed to lock event")
	}
	return nil
}

// CreateRegistration inserts a roster entry. A second registration for the same
// user yields ErrAlreadyRegistered.
func (r *MySQLEventRepository) CreateRegistration(
	ctx context.Context,
	registration *domain.Registration,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO event_registrations (id, event_id, user_id, registered_at) VALUES (?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(registration.ID),
		database.UUIDBytes(registration.EventID),
		database.UUIDBytes(registration.UserID),
		registration.RegisteredAt,
	)
	if err != nil {
		return registrationError(err)
	}
	return nil
}

// ListRegistrations returns the roster of an event in registration order.
func (r *MySQLEventRepository) ListRegistrations(
	ctx context.Context,
	eventID uuid.UUID,
) ([]*domain.Registration, error) {
	querier := database.GetTx(ctx, r.db)

	query := mySQLRegistrationSelect + ` WHERE r.event_id = ? ORDER BY r.registered_at ASC`
	return collectRegistrations(querier.QueryContext(ctx, query, database.UUIDBytes(eventID)))
}

// ListUserRegistrations returns a user's registrations ordered by event start date.
func (r *MySQLEventRepository) ListUserRegistrations(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Registration, error) {
	querier := database.GetTx(ctx, r.db)

	query := mySQLRegistrationSelect + ` WHERE r.user_id = ? ORDER BY e.start_date ASC`
	return collectRegistrations(querier.QueryContext(ctx, query, database.UUIDBytes(userID)))
}
