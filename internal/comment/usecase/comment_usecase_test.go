package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/comment/domain"
)

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepository) ListByItem(
	ctx context.Context,
	itemType domain.ItemType,
	itemID uuid.UUID,
) ([]*domain.Comment, error) {
	args := m.Called(ctx, itemType, itemID)
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestCommentUseCase_Create(t *testing.T) {
	ctx := context.Background()
	author, err := authDomain.NewPrincipal(uuid.Must(uuid.NewV7()), "faculty@klh.edu", authDomain.RoleFaculty, "Prof. Rao")
	require.NoError(t, err)

	t.Run("AuthorFromPrincipal", func(t *testing.T) {
		repo := &mockCommentRepository{}
		uc := NewCommentUseCase(repo)
		itemID := uuid.Must(uuid.NewV7())

		repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.UserID == author.ID() &&
				c.UserEmail == "faculty@klh.edu" &&
				c.UserName == "Prof. Rao" &&
				c.UserRole == authDomain.RoleFaculty
		})).Return(nil).Once()

		comment, err := uc.Create(ctx, author, &domain.CreateCommentInput{
			ItemType: domain.ItemEvent,
			ItemID:   itemID,
			Body:     "See you there",
		})

		require.NoError(t, err)
		assert.Equal(t, itemID, comment.ItemID)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidItemType", func(t *testing.T) {
		repo := &mockCommentRepository{}
		uc := NewCommentUseCase(repo)

		_, err := uc.Create(ctx, author, &domain.CreateCommentInput{ItemType: "resource", Body: "x"})

		assert.ErrorIs(t, err, domain.ErrInvalidItemType)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCommentUseCase_ListByItem_InvalidItemType(t *testing.T) {
	uc := NewCommentUseCase(&mockCommentRepository{})

	_, err := uc.ListByItem(context.Background(), "user", uuid.Must(uuid.NewV7()))

	assert.ErrorIs(t, err, domain.ErrInvalidItemType)
}
