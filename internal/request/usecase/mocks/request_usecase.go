// Package mocks provides mock implementations of the request use case for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/request/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

func requestOrNil(args mock.Arguments) (*domain.Request, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

// Create mocks the Create method.
func (m *MockUseCase) Create(
	ctx context.Context,
	requester *authDomain.Principal,
	input *domain.CreateRequestInput,
) (*domain.Request, error) {
	return requestOrNil(m.Called(ctx, requester, input))
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context, status domain.Status) ([]*domain.Request, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Request), args.Error(1)
}

// Decide mocks the Decide method.
func (m *MockUseCase) Decide(ctx context.Context, id uuid.UUID, decision domain.Decision) (*domain.Request, error) {
	return requestOrNil(m.Called(ctx, id, decision))
}
