// Package mocks provides mock implementations of the feedback use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/campus/internal/feedback/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// Submit mocks the Submit method.
func (m *MockUseCase) Submit(ctx context.Context, input *domain.SubmitFeedbackInput) (*domain.Feedback, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context) ([]*domain.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Feedback), args.Error(1)
}
