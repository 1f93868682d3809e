// Package mocks provides mock implementations of the announcement use case for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/campus/internal/announcement/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

func announcementOrNil(args mock.Arguments) (*domain.Announcement, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

// Create mocks the Create method.
func (m *MockUseCase) Create(
	ctx context.Context,
	authorID uuid.UUID,
	input *domain.CreateAnnouncementInput,
) (*domain.Announcement, error) {
	return announcementOrNil(m.Called(ctx, authorID, input))
}

// Get mocks the Get method.
func (m *MockUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	return announcementOrNil(m.Called(ctx, id))
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context, category string) ([]*domain.Announcement, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Announcement), args.Error(1)
}

// Update mocks the Update method.
func (m *MockUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateAnnouncementInput,
) (*domain.Announcement, error) {
	return announcementOrNil(m.Called(ctx, id, input))
}

// Delete mocks the Delete method.
func (m *MockUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
