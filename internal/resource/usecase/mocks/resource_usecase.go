// Package mocks provides mock implementations of the resource use case for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/campus/internal/resource/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

func resourceOrNil(args mock.Arguments) (*domain.Resource, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

// Create mocks the Create method.
func (m *MockUseCase) Create(
	ctx context.Context,
	uploaderID uuid.UUID,
	input *domain.CreateResourceInput,
) (*domain.Resource, error) {
	return resourceOrNil(m.Called(ctx, uploaderID, input))
}

// Get mocks the Get method.
func (m *MockUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	return resourceOrNil(m.Called(ctx, id))
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Resource), args.Error(1)
}

// Update mocks the Update method.
func (m *MockUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateResourceInput,
) (*domain.Resource, error) {
	return resourceOrNil(m.Called(ctx, id, input))
}

// Delete mocks the Delete method.
func (m *MockUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Download mocks the Download method.
func (m *MockUseCase) Download(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	return resourceOrNil(m.Called(ctx, id))
}
