package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/club/domain"
)

type clubUseCase struct {
	clubRepo ClubRepository
}

func (u *clubUseCase) Create(
	ctx context.Context,
	creatorID uuid.UUID,
	input *domain.CreateClubInput,
) (*domain.Club, error) {
	category := input.Category
	if category == "" {
		category = domain.DefaultCategory
	}
	presidentID := creatorID
	if input.PresidentID != nil {
		presidentID = *input.PresidentID
	}

	now := time.Now().UTC()
	club := &domain.Club{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        input.Name,
		Description: input.Description,
		Category:    category,
		PresidentID: presidentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

func (u *clubUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	return u.clubRepo.Get(ctx, id)
}

func (u *clubUseCase) List(ctx context.Context) ([]*domain.Club, error) {
	return u.clubRepo.List(ctx)
}

func (u *clubUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateClubInput,
) (*domain.Club, error) {
	club, err := u.clubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(club)
	club.UpdatedAt = time.Now().UTC()

	if err := u.clubRepo.Update(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

func (u *clubUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.clubRepo.Delete(ctx, id)
}

func (u *clubUseCase) Join(ctx context.Context, clubID, userID uuid.UUID) (*domain.Membership, error) {
	club, err := u.clubRepo.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}

	membership := &domain.Membership{
		ID:           uuid.Must(uuid.NewV7()),
		ClubID:       club.ID,
		ClubName:     club.Name,
		ClubCategory: club.Category,
		UserID:       userID,
		JoinedAt:     time.Now().UTC(),
	}
	if err := u.clubRepo.CreateMembership(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (u *clubUseCase) Leave(ctx context.Context, clubID, userID uuid.UUID) error {
	return u.clubRepo.DeleteUserMembership(ctx, clubID, userID)
}

func (u *clubUseCase) GetMembership(ctx context.Context, id uuid.UUID) (*domain.Membership, error) {
	return u.clubRepo.GetMembership(ctx, id)
}

func (u *clubUseCase) RemoveMembership(ctx context.Context, id uuid.UUID) error {
	return u.clubRepo.DeleteMembership(ctx, id)
}

func (u *clubUseCase) ListMembers(ctx context.Context, clubID uuid.UUID) ([]*domain.Membership, error) {
	if _, err := u.clubRepo.Get(ctx, clubID); err != nil {
		return nil, err
	}
	return u.clubRepo.ListMembers(ctx, clubID)
}

func (u *clubUseCase) ListUserMemberships(ctx context.Context, userID uuid.UUID) ([]*domain.Membership, error) {
	return u.clubRepo.ListUserMemberships(ctx, userID)
}

// NewClubUseCase creates a new UseCase with the provided dependencies.
func NewClubUseCase(clubRepo ClubRepository) UseCase {
	return &clubUseCase{clubRepo: clubRepo}
}
