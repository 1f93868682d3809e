// Package mocks provides mock implementations of the user use case for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/user/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockUseCase) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// UpdateRole mocks the UpdateRole method.
func (m *MockUseCase) UpdateRole(ctx context.Context, id uuid.UUID, role authDomain.Role) (*domain.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// UpdateRoleByEmail mocks the UpdateRoleByEmail method.
func (m *MockUseCase) UpdateRoleByEmail(
	ctx context.Context,
	email string,
	role authDomain.Role,
) (*domain.User, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Seed mocks the Seed method.
func (m *MockUseCase) Seed(ctx context.Context, inputs []domain.CreateUserInput) (int, error) {
	args := m.Called(ctx, inputs)
	return args.Int(0), args.Error(1)
}
