package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/campus/internal/lostfound/domain"
)

type mockLostItemRepository struct {
	mock.Mock
}

func (m *mockLostItemRepository) Create(ctx context.Context, item *domain.LostItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockLostItemRepository) List(ctx context.Context) ([]*domain.LostItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.LostItem), args.Error(1)
}

func TestLostItemUseCase_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("Reported", func(t *testing.T) {
		repo := &mockLostItemRepository{}
		uc := NewLostItemUseCase(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(i *domain.LostItem) bool {
			return i.Status == domain.StatusReported && i.ReporterEmail == "student@klh.edu"
		})).Return(nil).Once()

		item, err := uc.Report(ctx, &domain.ReportInput{
			Item:          "Blue umbrella",
			Location:      "Library",
			ReporterEmail: " Student@KLH.edu ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Blue umbrella", item.Item)
		repo.AssertExpectations(t)
	})

	t.Run("NoEmail", func(t *testing.T) {
		repo := &mockLostItemRepository{}
		uc := NewLostItemUseCase(repo)

		_, err := uc.Report(ctx, &domain.ReportInput{Item: "Keys", Location: "Gym"})

		assert.ErrorIs(t, err, domain.ErrReporterEmailRequired)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
