package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/campus/internal/database/mocks"
	"github.com/allisson/campus/internal/resource/domain"
)

type mockResourceRepository struct {
	mock.Mock
}

func (m *mockResourceRepository) Create(ctx context.Context, resource *domain.Resource) error {
	return m.Called(ctx, resource).Error(0)
}

func (m *mockResourceRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *mockResourceRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Resource, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Resource), args.Error(1)
}

func (m *mockResourceRepository) Update(ctx context.Context, resource *domain.Resource) error {
	return m.Called(ctx, resource).Error(0)
}

func (m *mockResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResourceRepository) IncrementDownloads(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func runInTx(txManager *databaseMocks.MockTxManager) {
	txManager.EXPECT().
		WithTx(mock.Anything, mock.AnythingOfType("func(context.Context) error")).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Once()
}

func TestResourceUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uploaderID := uuid.Must(uuid.NewV7())
	repo := &mockResourceRepository{}
	uc := NewResourceUseCase(databaseMocks.NewMockTxManager(t), repo)

	repo.On("Create", ctx, mock.MatchedBy(func(r *domain.Resource) bool {
		return r.Category == domain.DefaultCategory && r.UploaderID == uploaderID && r.DownloadCount == 0
	})).Return(nil).Once()

	resource, err := uc.Create(ctx, uploaderID, &domain.CreateResourceInput{Title: "Syllabus"})

	require.NoError(t, err)
	assert.Equal(t, "Syllabus", resource.Title)
	assert.Equal(t, resource.CreatedAt, resource.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestResourceUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial", func(t *testing.T) {
		repo := &mockResourceRepository{}
		uc := NewResourceUseCase(databaseMocks.NewMockTxManager(t), repo)
		existing := &domain.Resource{ID: uuid.Must(uuid.NewV7()), Title: "Old", Category: "physics"}
		title := "New"

		repo.On("Get", ctx, existing.ID).Return(existing, nil).Once()
		repo.On("Update", ctx, existing).Return(nil).Once()

		resource, err := uc.Update(ctx, existing.ID, &domain.UpdateResourceInput{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "New", resource.Title)
		assert.Equal(t, "physics", resource.Category)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := &mockResourceRepository{}
		uc := NewResourceUseCase(databaseMocks.NewMockTxManager(t), repo)
		id := uuid.Must(uuid.NewV7())

		repo.On("Get", ctx, id).Return(nil, domain.ErrResourceNotFound).Once()

		_, err := uc.Update(ctx, id, &domain.UpdateResourceInput{})

		assert.ErrorIs(t, err, domain.ErrResourceNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestResourceUseCase_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("Counted", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockResourceRepository{}
		uc := NewResourceUseCase(txManager, repo)
		id := uuid.Must(uuid.NewV7())

		runInTx(txManager)
		repo.On("IncrementDownloads", ctx, id).Return(nil).Once()
		repo.On("Get", ctx, id).Return(&domain.Resource{ID: id, FileURL: "https://x/y.pdf", DownloadCount: 4}, nil).Once()

		resource, err := uc.Download(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, 4, resource.DownloadCount)
		repo.AssertExpectations(t)
	})

	t.Run("Missing", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockResourceRepository{}
		uc := NewResourceUseCase(txManager, repo)
		id := uuid.Must(uuid.NewV7())

		runInTx(txManager)
		repo.On("IncrementDownloads", ctx, id).Return(domain.ErrResourceNotFound).Once()

		_, err := uc.Download(ctx, id)

		assert.ErrorIs(t, err, domain.ErrResourceNotFound)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("TxFailure", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockResourceRepository{}
		uc := NewResourceUseCase(txManager, repo)
		boom := errors.New("connection reset")

		txManager.EXPECT().WithTx(mock.Anything, mock.Anything).Return(boom).Once()

		_, err := uc.Download(ctx, uuid.Must(uuid.NewV7()))

		assert.ErrorIs(t, err, boom)
	})
}
