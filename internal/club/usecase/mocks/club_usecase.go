// Package mocks provides mock implementations of the club use case for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/campus/internal/club/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

func clubOrNil(args mock.Arguments) (*domain.Club, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}

func membershipOrNil(args mock.Arguments) (*domain.Membership, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func membershipsOrNil(args mock.Arguments) ([]*domain.Membership, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Membership), args.Error(1)
}

// Create mocks the Create method.
func (m *MockUseCase) Create(
	ctx context.Context,
	creatorID uuid.UUID,
	input *domain.CreateClubInput,
) (*domain.Club, error) {
	return clubOrNil(m.Called(ctx, creatorID, input))
}

// Get mocks the Get method.
func (m *MockUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	return clubOrNil(m.Called(ctx, id))
}

// List mocks the List method.
func (m *MockUseCase) List(ctx context.Context) ([]*domain.Club, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Club), args.Error(1)
}

// Update mocks the Update method.
func (m *MockUseCase) Update(ctx context.Context, id uuid.UUID, input *domain.UpdateClubInput) (*domain.Club, error) {
	return clubOrNil(m.Called(ctx, id, input))
}

// Delete mocks the Delete method.
func (m *MockUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Join mocks the Join method.
func (m *MockUseCase) Join(ctx context.Context, clubID, userID uuid.UUID) (*domain.Membership, error) {
	return membershipOrNil(m.Called(ctx, clubID, userID))
}

// Leave mocks the Leave method.
func (m *MockUseCase) Leave(ctx context.Context, clubID, userID uuid.UUID) error {
	return m.Called(ctx, clubID, userID).Error(0)
}

// GetMembership mocks the GetMembership method.
func (m *MockUseCase) GetMembership(ctx context.Context, id uuid.UUID) (*domain.Membership, error) {
	return membershipOrNil(m.Called(ctx, id))
}

// RemoveMembership mocks the RemoveMembership method.
func (m *MockUseCase) RemoveMembership(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// ListMembers mocks the ListMembers method.
func (m *MockUseCase) ListMembers(ctx context.Context, clubID uuid.UUID) ([]*domain.Membership, error) {
	return membershipsOrNil(m.Called(ctx, clubID))
}

// ListUserMemberships mocks the ListUserMemberships method.
func (m *MockUseCase) ListUserMemberships(ctx context.Context, userID uuid.UUID) ([]*domain.Membership, error) {
	return membershipsOrNil(m.Called(ctx, userID))
}
