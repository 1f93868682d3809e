package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/announcement/domain"
)

type announcementUseCase struct {
	announcementRepo AnnouncementRepository
}

func (a *announcementUseCase) Create(
	ctx context.Context,
	authorID uuid.UUID,
	input *domain.CreateAnnouncementInput,
) (*domain.Announcement, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	if !priority.Valid() {
		return nil, domain.ErrInvalidPriority
	}
	category := input.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	now := time.Now().UTC()
	announcement := &domain.Announcement{
		ID:        uuid.Must(uuid.NewV7()),
		Title:     input.Title,
		Content:   input.Content,
		Priority:  priority,
		Category:  category,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := a.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (a *announcementUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	return a.announcementRepo.Get(ctx, id)
}

func (a *announcementUseCase) List(ctx context.Context, category string) ([]*domain.Announcement, error) {
	return a.announcementRepo.List(ctx, category)
}

func (a *announcementUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateAnnouncementInput,
) (*domain.Announcement, error) {
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, domain.ErrInvalidPriority
	}

	announcement, err := a.announcementRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(announcement)
	announcement.UpdatedAt = time.Now().UTC()

	if err := a.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (a *announcementUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return a.announcementRepo.Delete(ctx, id)
}

// NewAnnouncementUseCase creates a new UseCase with the provided dependencies.
func NewAnnouncementUseCase(announcementRepo AnnouncementRepository) UseCase {
	return &announcementUseCase{announcementRepo: announcementRepo}
}
