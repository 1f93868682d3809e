package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/campus/internal/notification/domain"
	"github.com/allisson/campus/internal/testutil"
)

var notificationRowColumns = []string{"id", "user_id", "type", "title", "message", "is_read", "created_at", "read_at"}

func TestPostgreSQLNotificationRepository_Create(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLNotificationRepository(db)
	n := domain.New(uuid.Must(uuid.NewV7()), domain.TypeInfo, "Exam", "Room 4", testutil.FixedTime)

	mock.ExpectExec(`INSERT INTO notifications`).
		WithArgs(n.ID, n.UserID, "info", n.Title, n.Message, false, n.CreatedAt, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), n))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLNotificationRepository_ListByUser(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLNotificationRepository(db)
	userID := uuid.Must(uuid.NewV7())
	readAt := testutil.FixedTime

	rows := sqlmock.NewRows(notificationRowColumns).
		AddRow(uuid.Must(uuid.NewV7()).String(), userID.String(), "success", "a", "b", true, testutil.FixedTime, readAt).
		AddRow(uuid.Must(uuid.NewV7()).String(), userID.String(), "info", "c", "d", false, testutil.FixedTime, nil)
	mock.ExpectQuery(`WHERE user_id = \$1 ORDER BY created_at DESC, id DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(userID, 20, 40).
		WillReturnRows(rows)

	notifications, err := repo.ListByUser(context.Background(), userID, 40, 20)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	require.NotNil(t, notifications[0].ReadAt)
	assert.Equal(t, domain.TypeSuccess, notifications[0].Type)
	assert.Nil(t, notifications[1].ReadAt)
}

func TestPostgreSQLNotificationRepository_CountUnread(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLNotificationRepository(db)
	userID := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE user_id = \$1 AND is_read = FALSE`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUnread(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPostgreSQLNotificationRepository_MarkAllRead(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLNotificationRepository(db)
	userID := uuid.Must(uuid.NewV7())

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE, read_at = \$1 WHERE user_id = \$2 AND is_read = FALSE`).
		WithArgs(testutil.FixedTime, userID).
		WillReturnResult(sqlmock.NewResult(0, 4))

	updated, err := repo.MarkAllRead(context.Background(), userID, testutil.FixedTime)
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)
}

func TestMySQLNotificationRepository_Get_NotFound(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLNotificationRepository(db)
	id := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`FROM notifications WHERE id = \?`).
		WithArgs(id[:]).
		WillReturnRows(sqlmock.NewRows(notificationRowColumns))

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestMySQLNotificationRepository_Delete(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLNotificationRepository(db)
	id := uuid.Must(uuid.NewV7())

	mock.ExpectExec(`DELETE FROM notifications WHERE id = \?`).
		WithArgs(id[:]).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrNotificationNotFound)
}
