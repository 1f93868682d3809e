package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/campus/internal/resource/domain"
	"github.com/allisson/campus/internal/testutil"
)

func TestMySQLResourceRepository_ListByCategory(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLResourceRepository(db)
	res := newTestResource()

	rows := sqlmock.NewRows(resourceRowColumns).AddRow(
		res.ID[:], res.Title, res.Description, res.Category, res.FileURL, res.FileType, int64(2048),
		int64(0), res.UploaderID[:], "", res.CreatedAt, res.UpdatedAt,
	)
	mock.ExpectQuery(`WHERE \(\? = '' OR r.category = \?\)`).
		WithArgs("mathematics", "mathematics", "", "", "").
		WillReturnRows(rows)

	resources, err := repo.List(context.Background(), domain.ListFilter{Category: "mathematics"})
	require.NoError(t, err)
	require.Len(t, resources, 1)
	require.NotNil(t, resources[0].FileSize)
	assert.Equal(t, int64(2048), *resources[0].FileSize)
	assert.Equal(t, res.ID, resources[0].ID)
}

func TestMySQLResourceRepository_Get_NotFound(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLResourceRepository(db)
	res := newTestResource()

	mock.ExpectQuery(`WHERE r.id = \?`).WithArgs(res.ID[:]).WillReturnRows(sqlmock.NewRows(resourceRowColumns))

	_, err := repo.Get(context.Background(), res.ID)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}
