package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/campus/internal/testutil"
)

func TestMySQLAnnouncementRepository_Update(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLAnnouncementRepository(db)
	a := newTestAnnouncement()

	mock.ExpectExec(`UPDATE announcements SET .* WHERE id = \?`).
		WithArgs(a.Title, a.Content, "high", a.Category, a.UpdatedAt, a.ID[:]).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLAnnouncementRepository_ListAll(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLAnnouncementRepository(db)
	a := newTestAnnouncement()

	rows := sqlmock.NewRows(announcementRowColumns).AddRow(
		a.ID[:], a.Title, a.Content, "urgent", a.Category, a.AuthorID[:], "", a.CreatedAt, a.UpdatedAt,
	)
	mock.ExpectQuery(`WHERE \(\? = '' OR a.category = \?\)`).WithArgs("", "").WillReturnRows(rows)

	announcements, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, a.AuthorID, announcements[0].AuthorID)
}
