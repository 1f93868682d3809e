// Package mocks provides mock implementations of the session use case for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/campus/internal/auth/domain"
)

// MockSessionUseCase is a mock implementation of usecase.SessionUseCase.
type MockSessionUseCase struct {
	mock.Mock
}

// Login mocks the Login method.
func (m *MockSessionUseCase) Login(ctx context.Context, email, password string) (*authDomain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Session), args.Error(1)
}

// Logout mocks the Logout method.
func (m *MockSessionUseCase) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// ChangePassword mocks the ChangePassword method.
func (m *MockSessionUseCase) ChangePassword(
	ctx context.Context,
	userID uuid.UUID,
	currentPassword, newPassword string,
) error {
	return m.Called(ctx, userID, currentPassword, newPassword).Error(0)
}
