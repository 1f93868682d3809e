// Package usecase implements announcement management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/announcement/domain"
)

// AnnouncementRepository persists announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)

	// List returns announcements newest first. An empty category matches all.
	List(ctx context.Context, category string) ([]*domain.Announcement, error)

	Update(ctx context.Context, announcement *domain.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UseCase defines announcement operations.
type UseCase interface {
	Create(
		ctx context.Context,
		authorID uuid.UUID,
		input *domain.CreateAnnouncementInput,
	) (*domain.Announcement, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	List(ctx context.Context, category string) ([]*domain.Announcement, error)
	Update(
		ctx context.Context,
		id uuid.UUID,
		input *domain.UpdateAnnouncementInput,
	) (*domain.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
