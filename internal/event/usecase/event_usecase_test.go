package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/campus/internal/database/mocks"
	"github.com/allisson/campus/internal/event/domain"
	"github.com/allisson/campus/internal/testutil"
)

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *mockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *mockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventRepository) Lock(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventRepository) CreateRegistration(ctx context.Context, registration *domain.Registration) error {
	return m.Called(ctx, registration).Error(0)
}

func (m *mockEventRepository) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*domain.Registration, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]*domain.Registration), args.Error(1)
}

func (m *mockEventRepository) ListUserRegistrations(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Registration, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*domain.Registration), args.Error(1)
}

func runInTx(txManager *databaseMocks.MockTxManager) {
	txManager.EXPECT().
		WithTx(mock.Anything, mock.AnythingOfType("func(context.Context) error")).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Once()
}

func TestEventUseCase_Create(t *testing.T) {
	ctx := context.Background()
	organizerID := uuid.Must(uuid.NewV7())
	start := testutil.FixedTime.Add(24 * time.Hour)

	t.Run("Success_DefaultCategory", func(t *testing.T) {
		repo := &mockEventRepository{}
		uc := NewEventUseCase(databaseMocks.NewMockTxManager(t), repo)

		repo.On("Create", ctx, mock.MatchedBy(func(e *domain.Event) bool {
			return e.Category == domain.DefaultCategory && e.OrganizerID == organizerID && e.Title == "Hackathon"
		})).Return(nil).Once()

		event, err := uc.Create(ctx, organizerID, &domain.CreateEventInput{Title: "Hackathon", StartDate: start})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, event.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Error_EndBeforeStart", func(t *testing.T) {
		uc := NewEventUseCase(databaseMocks.NewMockTxManager(t), &mockEventRepository{})
		end := start.Add(-time.Hour)

		_, err := uc.Create(ctx, organizerID, &domain.CreateEventInput{Title: "x", StartDate: start, EndDate: &end})

		assert.ErrorIs(t, err, domain.ErrInvalidDates)
	})
}

func TestEventUseCase_Update(t *testing.T) {
	ctx := context.Background()
	existing := &domain.Event{ID: uuid.Must(uuid.NewV7()), Title: "Old", Location: "Hall", StartDate: testutil.FixedTime}

	t.Run("PartialUpdate", func(t *testing.T) {
		repo := &mockEventRepository{}
		uc := NewEventUseCase(databaseMocks.NewMockTxManager(t), repo)
		title := "New"

		repo.On("Get", ctx, existing.ID).Return(existing, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(e *domain.Event) bool {
			return e.Title == "New" && e.Location == "Hall"
		})).Return(nil).Once()

		event, err := uc.Update(ctx, existing.ID, &domain.UpdateEventInput{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "New", event.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := &mockEventRepository{}
		uc := NewEventUseCase(databaseMocks.NewMockTxManager(t), repo)
		id := uuid.Must(uuid.NewV7())

		repo.On("Get", ctx, id).Return(nil, domain.ErrEventNotFound).Once()

		_, err := uc.Update(ctx, id, &domain.UpdateEventInput{})

		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}

func TestEventUseCase_Register(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockEventRepository{}
		uc := NewEventUseCase(txManager, repo)
		limit := 10
		event := &domain.Event{ID: uuid.Must(uuid.NewV7()), Title: "Fest", MaxAttendees: &limit, RegistrationCount: 9}

		runInTx(txManager)
		repo.On("Lock", ctx, event.ID).Return(nil).Once()
		repo.On("Get", ctx, event.ID).Return(event, nil).Once()
		repo.On("CreateRegistration", ctx, mock.MatchedBy(func(r *domain.Registration) bool {
			return r.EventID == event.ID && r.UserID == userID
		})).Return(nil).Once()

		registration, err := uc.Register(ctx, event.ID, userID)

		require.NoError(t, err)
		assert.Equal(t, "Fest", registration.EventTitle)
		repo.AssertExpectations(t)
	})

	t.Run("Full", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockEventRepository{}
		uc := NewEventUseCase(txManager, repo)
		limit := 10
		event := &domain.Event{ID: uuid.Must(uuid.NewV7()), MaxAttendees: &limit, RegistrationCount: 10}

		runInTx(txManager)
		repo.On("Lock", ctx, event.ID).Return(nil).Once()
		repo.On("Get", ctx, event.ID).Return(event, nil).Once()

		_, err := uc.Register(ctx, event.ID, userID)

		assert.ErrorIs(t, err, domain.ErrEventFull)
		repo.AssertNotCalled(t, "CreateRegistration", mock.Anything, mock.Anything)
	})

	t.Run("AlreadyRegistered", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockEventRepository{}
		uc := NewEventUseCase(txManager, repo)
		event := &domain.Event{ID: uuid.Must(uuid.NewV7())}

		runInTx(txManager)
		repo.On("Lock", ctx, event.ID).Return(nil).Once()
		repo.On("Get", ctx, event.ID).Return(event, nil).Once()
		repo.On("CreateRegistration", ctx, mock.Anything).Return(domain.ErrAlreadyRegistered).Once()

		_, err := uc.Register(ctx, event.ID, userID)

		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("MissingEvent", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := &mockEventRepository{}
		uc := NewEventUseCase(txManager, repo)
		id := uuid.Must(uuid.NewV7())

		runInTx(txManager)
		repo.On("Lock", ctx, id).Return(domain.ErrEventNotFound).Once()

		_, err := uc.Register(ctx, id, userID)

		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}

func TestEventUseCase_ListRegistrations(t *testing.T) {
	ctx := context.Background()

	t.Run("ChecksEventExists", func(t *testing.T) {
		repo := &mockEventRepository{}
		uc := NewEventUseCase(databaseMocks.NewMockTxManager(t), repo)
		id := uuid.Must(uuid.NewV7())

		repo.On("Get", ctx, id).Return(nil, domain.ErrEventNotFound).Once()

		_, err := uc.ListRegistrations(ctx, id)

		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		repo.AssertNotCalled(t, "ListRegistrations", mock.Anything, mock.Anything)
	})

	t.Run("Roster", func(t *testing.T) {
		repo := &mockEventRepository{}
		uc := NewEventUseCase(databaseMocks.NewMockTxManager(t), repo)
		id := uuid.Must(uuid.NewV7())
		roster := []*domain.Registration{{ID: uuid.Must(uuid.NewV7()), EventID: id}}

		repo.On("Get", ctx, id).Return(&domain.Event{ID: id}, nil).Once()
		repo.On("ListRegistrations", ctx, id).Return(roster, nil).Once()

		got, err := uc.ListRegistrations(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, roster, got)
	})
}
