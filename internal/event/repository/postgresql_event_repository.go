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

const postgreSQLEventSelect = `SELECT e.id, e.title, e.description, e.start_date, e.end_date, e.location,
		e.category, e.max_attendees, e.organizer_id, COALESCE(u.name, ''),
		(SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id),
		e.created_at, e.updated_at
	FROM events e LEFT JOIN users u ON u.id = e.organizer_id`

const postgreSQLRegistrationSelect = `SELECT r.id, r.event_id, e.title, e.start_date, e.location,
		r.user_id, COALESCE(u.name, ''), COALESCE(u.email, ''), r.registered_at
	FROM event_registrations r
	JOIN events e ON e.id = r.event_id
	LEFT JOIN users u ON u.id = r.user_id`

// PostgreSQLEventRepository handles event persistence for PostgreSQL.
type PostgreSQLEventRepository struct {
	db *sql.DB
}

// NewPostgreSQLEventRepository creates a new PostgreSQLEventRepository.
func NewPostgreSQLEventRepository(db *sql.DB) *PostgreSQLEventRepository {
	return &PostgreSQLEventRepository{db: db}
}

// Create inserts a new event.
func (r *PostgreSQLEventRepository) Create(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO events (id, title, description, start_date, end_date, location, category,
				max_attendees, organizer_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.ExecContext(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Category,
		event.MaxAttendees,
		event.OrganizerID,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create event")
	}
	return nil
}

// Get retrieves an event with its organizer name and registration count.
func (r *PostgreSQLEventRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)
	return getEvent(querier.QueryRowContext(ctx, postgreSQLEventSelect+` WHERE e.id = $1`, id))
}

// List retrieves every event ordered by start date.
func (r *PostgreSQLEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)
	return collectEvents(querier.QueryContext(ctx, postgreSQLEventSelect+` ORDER BY e.start_date ASC`))
}

// Update writes every mutable field of event.
func (r *PostgreSQLEventRepository) Update(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE events SET title = $1, description = $2, start_date = $3, end_date = $4,
				location = $5, category = $6, max_attendees = $7, updated_at = $8
			  WHERE id = $9`

	result, err := querier.ExecContext(ctx, query,
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Category,
		event.MaxAttendees,
		event.UpdatedAt,
		event.ID,
	)
	return expectOneRow(result, err, "failed to update event")
}

// Delete removes an event. Registrations are removed by cascade.
func (r *PostgreSQLEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	return expectOneRow(result, err, "failed to delete event")
}

// Lock takes a FOR UPDATE lock on the event row.
func (r *PostgreSQLEventRepository) Lock(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	var locked uuid.UUID
	err := querier.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
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
func (r *PostgreSQLEventRepository) CreateRegistration(
	ctx context.Context,
	registration *domain.Registration,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO event_registrations (id, event_id, user_id, registered_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query,
		registration.ID,
		registration.EventID,
		registration.UserID,
		registration.RegisteredAt,
	)
	if err != nil {
		return registrationError(err)
	}
	return nil
}

// ListRegistrations returns the roster of an event in registration order.
func (r *PostgreSQLEventRepository) ListRegistrations(
	ctx context.Context,
	eventID uuid.UUID,
) ([]*domain.Registration, error) {
	querier := database.GetTx(ctx, r.db)

	query := postgreSQLRegistrationSelect + ` WHERE r.event_id = $1 ORDER BY r.registered_at ASC`
	return collectRegistrations(querier.QueryContext(ctx, query, eventID))
}

// ListUserRegistrations returns a user's registrations ordered by event start date.
func (r *PostgreSQLEventRepository) ListUserRegistrations(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Registration, error) {
	querier := database.GetTx(ctx, r.db)

	query := postgreSQLRegistrationSelect + ` WHERE r.user_id = $1 ORDER BY e.start_date ASC`
	return collectRegistrations(querier.QueryContext(ctx, query, userID))
}
