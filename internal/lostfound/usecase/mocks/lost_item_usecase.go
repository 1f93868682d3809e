// Package mocks provides mock implementations of the lost-and-found use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/campus/internal/lostfound/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// Report mocks the Report method.
func (m *MockUseCase) Report(ctx context.Context, input *domain.ReportInput) (*domain.LostItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LostItem), args.Error(1)
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context) ([]*domain.LostItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LostItem), args.Error(1)
}
