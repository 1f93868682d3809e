// Package mocks provides mock implementations of the event use case for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/campus/internal/event/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

func eventOrNil(args mock.Arguments) (*domain.Event, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func registrationsOrNil(args mock.Arguments) ([]*domain.Registration, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Registration), args.Error(1)
}

// Create mocks the Create method.
func (m *MockUseCase) Create(
	ctx context.Context,
	organizerID uuid.UUID,
	input *domain.CreateEventInput,
) (*domain.Event, error) {
	return eventOrNil(m.Called(ctx, organizerID, input))
}

// Get mocks the Get method.
func (m *MockUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return eventOrNil(m.Called(ctx, id))
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context) ([]*domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

// Update mocks the Update method.
func (m *MockUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateEventInput,
) (*domain.Event, error) {
	return eventOrNil(m.Called(ctx, id, input))
}

// Delete mocks the Delete method.
func (m *MockUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Register mocks the Register method.
func (m *MockUseCase) Register(ctx context.Context, eventID, userID uuid.UUID) (*domain.Registration, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}

// ListRegistrations mocks the ListRegistrations method.
func (m *MockUseCase) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*domain.Registration, error) {
	return registrationsOrNil(m.Called(ctx, eventID))
}

// ListUserRegistrations mocks the ListUserRegistrations method.
func (m *MockUseCase) ListUserRegistrations(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Registration, error) {
	return registrationsOrNil(m.Called(ctx, userID))
}
