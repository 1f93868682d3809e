package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/campus/internal/club/domain"
	"github.com/allisson/campus/internal/testutil"
)

var clubRowColumns = []string{
	"id", "name", "description", "category", "president_id", "president_name", "member_count",
	"created_at", "updated_at",
}

var membershipRowColumns = []string{
	"id", "club_id", "club_name", "club_category", "user_id", "name", "email", "role", "joined_at",
}

func newTestClub() *domain.Club {
	return &domain.Club{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        "Robotics Club",
		Description: "Build and race robots",
		Category:    "technical",
		PresidentID: uuid.Must(uuid.NewV7()),
		CreatedAt:   testutil.FixedTime,
		UpdatedAt:   testutil.FixedTime,
	}
}

func TestPostgreSQLClubRepository_Create(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLClubRepository(db)
	club := newTestClub()

	mock.ExpectExec(`INSERT INTO clubs`).
		WithArgs(club.ID, club.Name, club.Description, club.Category, club.PresidentID, club.CreatedAt, club.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), club))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLClubRepository_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := NewPostgreSQLClubRepository(db)
		club := newTestClub()

		rows := sqlmock.NewRows(clubRowColumns).AddRow(
			club.ID.String(), club.Name, club.Description, club.Category, club.PresidentID.String(),
			"Asha", 7, club.CreatedAt, club.UpdatedAt,
		)
		mock.ExpectQuery(`FROM clubs c LEFT JOIN users u .* WHERE c.id = \$1`).WithArgs(club.ID).WillReturnRows(rows)

		got, err := repo.Get(context.Background(), club.ID)
		require.NoError(t, err)
		assert.Equal(t, club.ID, got.ID)
		assert.Equal(t, "Asha", got.PresidentName)
		assert.Equal(t, 7, got.MemberCount)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := NewPostgreSQLClubRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`WHERE c.id = \$1`).WithArgs(id).WillReturnRows(sqlmock.NewRows(clubRowColumns))

		_, err := repo.Get(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrClubNotFound)
	})
}

func TestPostgreSQLClubRepository_List(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLClubRepository(db)
	club := newTestClub()

	rows := sqlmock.NewRows(clubRowColumns).AddRow(
		club.ID.String(), club.Name, club.Description, club.Category, club.PresidentID.String(),
		"", 0, club.CreatedAt, club.UpdatedAt,
	)
	mock.ExpectQuery(`ORDER BY c.name ASC`).WillReturnRows(rows)

	clubs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, clubs, 1)
}

func TestPostgreSQLClubRepository_Update_NotFound(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLClubRepository(db)
	club := newTestClub()

	mock.ExpectExec(`UPDATE clubs SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), club), domain.ErrClubNotFound)
}

func TestPostgreSQLClubRepository_CreateMembership(t *testing.T) {
	membership := &domain.Membership{
		ID:       uuid.Must(uuid.NewV7()),
		ClubID:   uuid.Must(uuid.NewV7()),
		UserID:   uuid.Must(uuid.NewV7()),
		JoinedAt: testutil.FixedTime,
	}

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"Duplicate", &pq.Error{Code: "23505"}, domain.ErrAlreadyMember},
		{"MissingClub", &pq.Error{Code: "23503"}, domain.ErrClubNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := testutil.NewMockDB(t)
			repo := NewPostgreSQLClubRepository(db)

			mock.ExpectExec(`INSERT INTO club_memberships`).
				WithArgs(membership.ID, membership.ClubID, membership.UserID, membership.JoinedAt).
				WillReturnError(tt.dbErr)

			assert.ErrorIs(t, repo.CreateMembership(context.Background(), membership), tt.wantErr)
		})
	}

	t.Run("DatabaseError", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := NewPostgreSQLClubRepository(db)

		mock.ExpectExec(`INSERT INTO club_memberships`).WillReturnError(errors.New("connection reset"))

		err := repo.CreateMembership(context.Background(), membership)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create membership")
	})
}

func TestPostgreSQLClubRepository_DeleteUserMembership(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLClubRepository(db)
	clubID, userID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())

	mock.ExpectExec(`DELETE FROM club_memberships WHERE club_id = \$1 AND user_id = \$2`).
		WithArgs(clubID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteUserMembership(context.Background(), clubID, userID), domain.ErrNotMember)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLClubRepository_ListMembers(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLClubRepository(db)
	clubID := uuid.Must(uuid.NewV7())

	rows := sqlmock.NewRows(membershipRowColumns).AddRow(
		uuid.Must(uuid.NewV7()).String(), clubID.String(), "Robotics Club", "technical",
		uuid.Must(uuid.NewV7()).String(), "Ravi", "ravi@klh.edu", "student", testutil.FixedTime,
	)
	mock.ExpectQuery(`WHERE m.club_id = \$1 ORDER BY m.joined_at DESC`).WithArgs(clubID).WillReturnRows(rows)

	members, err := repo.ListMembers(context.Background(), clubID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "ravi@klh.edu", members[0].UserEmail)
	assert.Equal(t, "student", members[0].UserRole)
}
