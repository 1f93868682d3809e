package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/campus/internal/database/mocks"
	"github.com/allisson/campus/internal/notification/domain"
)

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *mockNotificationRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *mockNotificationRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Notification, error) {
	args := m.Called(ctx, userID, offset, limit)
	return args.Get(0).([]*domain.Notification), args.Error(1)
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	return m.Called(ctx, id, readAt).Error(0)
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error) {
	args := m.Called(ctx, userID, readAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockRecipientLister struct {
	mock.Mock
}

func (m *mockRecipientLister) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func runInTx(txManager *databaseMocks.MockTxManager) {
	txManager.EXPECT().
		WithTx(mock.Anything, mock.AnythingOfType("func(context.Context) error")).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Once()
}

func TestNotificationUseCase_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Targeted", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockNotificationRepository{}
		lister := &mockRecipientLister{}
		uc := NewNotificationUseCase(txManager, repo, lister)
		a, b := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())

		runInTx(txManager)
		repo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.TypeInfo && n.Title == "Exam" && !n.IsRead
		})).Return(nil).Twice()

		sent, err := uc.Send(ctx, &domain.SendInput{UserIDs: []uuid.UUID{a, b, a}, Title: "Exam", Message: "Room 4"})

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		repo.AssertExpectations(t)
		lister.AssertNotCalled(t, "ListIDs", mock.Anything)
	})

	t.Run("Broadcast", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockNotificationRepository{}
		lister := &mockRecipientLister{}
		uc := NewNotificationUseCase(txManager, repo, lister)
		everyone := []uuid.UUID{uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())}

		runInTx(txManager)
		lister.On("ListIDs", ctx).Return(everyone, nil).Once()
		repo.On("Create", ctx, mock.Anything).Return(nil).Times(3)

		sent, err := uc.Send(ctx, &domain.SendInput{Type: domain.TypeWarning, Title: "Storm", Message: "Stay in"})

		require.NoError(t, err)
		assert.Equal(t, 3, sent)
	})

	t.Run("InvalidType", func(t *testing.T) {
		uc := NewNotificationUseCase(databaseMocks.NewMockTxManager(t), &mockNotificationRepository{}, &mockRecipientLister{})

		_, err := uc.Send(ctx, &domain.SendInput{Type: "alert", Title: "x", Message: "y"})

		assert.ErrorIs(t, err, domain.ErrInvalidType)
	})

	t.Run("CreateFailureRollsBack", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockNotificationRepository{}
		uc := NewNotificationUseCase(txManager, repo, &mockRecipientLister{})
		boom := errors.New("deadlock")

		runInTx(txManager)
		repo.On("Create", ctx, mock.Anything).Return(boom).Once()

		sent, err := uc.Send(ctx, &domain.SendInput{UserIDs: []uuid.UUID{uuid.Must(uuid.NewV7())}, Title: "x", Message: "y"})

		assert.ErrorIs(t, err, boom)
		assert.Zero(t, sent)
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Marked", func(t *testing.T) {
		repo := &mockNotificationRepository{}
		uc := NewNotificationUseCase(databaseMocks.NewMockTxManager(t), repo, &mockRecipientLister{})
		readAt := time.Now().UTC()
		n := &domain.Notification{ID: uuid.Must(uuid.NewV7()), IsRead: true, ReadAt: &readAt}

		repo.On("MarkRead", ctx, n.ID, mock.AnythingOfType("time.Time")).Return(nil).Once()
		repo.On("Get", ctx, n.ID).Return(n, nil).Once()

		got, err := uc.MarkRead(ctx, n.ID)

		require.NoError(t, err)
		assert.True(t, got.IsRead)
	})

	t.Run("Missing", func(t *testing.T) {
		repo := &mockNotificationRepository{}
		uc := NewNotificationUseCase(databaseMocks.NewMockTxManager(t), repo, &mockRecipientLister{})
		id := uuid.Must(uuid.NewV7())

		repo.On("MarkRead", ctx, id, mock.Anything).Return(nil).Once()
		repo.On("Get", ctx, id).Return(nil, domain.ErrNotificationNotFound).Once()

		_, err := uc.MarkRead(ctx, id)

		assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
	})
}

func TestNotificationUseCase_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	repo := &mockNotificationRepository{}
	uc := NewNotificationUseCase(databaseMocks.NewMockTxManager(t), repo, &mockRecipientLister{})
	userID := uuid.Must(uuid.NewV7())

	repo.On("MarkAllRead", ctx, userID, mock.AnythingOfType("time.Time")).Return(int64(5), nil).Once()

	updated, err := uc.MarkAllRead(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(5), updated)
}
