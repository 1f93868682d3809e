package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/campus/internal/event/domain"
	"github.com/allisson/campus/internal/testutil"
)

func TestMySQLEventRepository_Create(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLEventRepository(db)
	event := newTestEvent()

	mock.ExpectExec(`INSERT INTO events .* VALUES \(\?, \?, \?, \?, \?, \?, \?, \?, \?, \?, \?\)`).
		WithArgs(event.ID[:], event.Title, event.Description, event.StartDate, nil, event.Location,
			event.Category, 50, event.OrganizerID[:], event.CreatedAt, event.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLEventRepository_Get(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLEventRepository(db)
	event := newTestEvent()

	rows := sqlmock.NewRows(eventRowColumns).AddRow(
		event.ID[:], event.Title, event.Description, event.StartDate, nil, event.Location, event.Category,
		nil, event.OrganizerID[:], "Dr. Rao", 0, event.CreatedAt, event.UpdatedAt,
	)
	mock.ExpectQuery(`WHERE e.id = \?`).WithArgs(event.ID[:]).WillReturnRows(rows)

	got, err := repo.Get(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, event.OrganizerID, got.OrganizerID)
	assert.Nil(t, got.MaxAttendees)
}

func TestMySQLEventRepository_CreateRegistration_Duplicate(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLEventRepository(db)

	mock.ExpectExec(`INSERT INTO event_registrations`).WillReturnError(&mysql.MySQLError{Number: 1062})

	err := repo.CreateRegistration(context.Background(), &domain.Registration{
		ID:      uuid.Must(uuid.NewV7()),
		EventID: uuid.Must(uuid.NewV7()),
		UserID:  uuid.Must(uuid.NewV7()),
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestMySQLEventRepository_Delete(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLEventRepository(db)
	id := uuid.Must(uuid.NewV7())

	mock.ExpectExec(`DELETE FROM events WHERE id = \?`).WithArgs(id[:]).WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLEventRepository_ListUserRegistrations(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLEventRepository(db)
	userID := uuid.Must(uuid.NewV7())

	rows := sqlmock.NewRows(registrationRowColumns).AddRow(
		uuid.Must(uuid.NewV7()).String(), uuid.Must(uuid.NewV7()).String(), "Tech Fest", testutil.FixedTime,
		"Hall", userID[:], "Student", "student@klh.edu", testutil.FixedTime,
	)
	mock.ExpectQuery(`WHERE r.user_id = \? ORDER BY e.start_date ASC`).WithArgs(userID[:]).WillReturnRows(rows)

	registrations, err := repo.ListUserRegistrations(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, registrations, 1)
	assert.Equal(t, userID, registrations[0].UserID)
}
