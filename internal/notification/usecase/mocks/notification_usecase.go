// Package mocks provides mock implementations of the notification use case for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/campus/internal/notification/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

func notificationOrNil(args mock.Arguments) (*domain.Notification, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

// Send mocks the Send method.
func (m *MockUseCase) Send(ctx context.Context, input *domain.SendInput) (int, error) {
	args := m.Called(ctx, input)
	return args.Int(0), args.Error(1)
}

// Get mocks the Get method.
func (m *MockUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	return notificationOrNil(m.Called(ctx, id))
}

// ListOwn mocks the ListOwn method.
func (m *MockUseCase) ListOwn(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Notification, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Notification), args.Error(1)
}

// CountUnread mocks the CountUnread method.
func (m *MockUseCase) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MarkRead mocks the MarkRead method.
func (m *MockUseCase) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	return notificationOrNil(m.Called(ctx, id))
}

// MarkAllRead mocks the MarkAllRead method.
func (m *MockUseCase) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
