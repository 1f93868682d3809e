package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/campus/internal/lostfound/domain"
	"github.com/allisson/campus/internal/testutil"
)

var lostItemColumns = []string{"id", "item", "location", "description", "status", "reporter_email", "created_at"}

func newTestLostItem() *domain.LostItem {
	return &domain.LostItem{
		ID:            uuid.Must(uuid.NewV7()),
		Item:          "Blue umbrella",
		Location:      "Library",
		Status:        domain.StatusReported,
		ReporterEmail: "student@klh.edu",
		CreatedAt:     testutil.FixedTime,
	}
}

func TestPostgreSQLLostItemRepository_Create(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLLostItemRepository(db)
	item := newTestLostItem()

	mock.ExpectExec(`INSERT INTO lost_items`).
		WithArgs(item.ID, item.Item, item.Location, item.Description, item.Status, item.ReporterEmail, item.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), item))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLLostItemRepository_List(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLLostItemRepository(db)
	item := newTestLostItem()

	rows := sqlmock.NewRows(lostItemColumns).AddRow(
		item.ID.String(), item.Item, item.Location, "", item.Status, item.ReporterEmail, item.CreatedAt,
	)
	mock.ExpectQuery(`FROM lost_items ORDER BY created_at DESC`).WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestMySQLLostItemRepository_Create(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLLostItemRepository(db)
	item := newTestLostItem()

	mock.ExpectExec(`INSERT INTO lost_items`).
		WithArgs(item.ID[:], item.Item, item.Location, item.Description, item.Status, item.ReporterEmail, item.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), item))
}

func TestMySQLLostItemRepository_List_Error(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLLostItemRepository(db)

	mock.ExpectQuery(`FROM lost_items`).WillReturnError(errors.New("server has gone away"))

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "failed to list lost items")
}
