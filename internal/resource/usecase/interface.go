// Package usecase implements the resource library.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/resource/domain"
)

// ResourceRepository persists resources.
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error)

	// List returns matching resources newest first.
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Resource, error)

	Update(ctx context.Context, resource *domain.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementDownloads adds one to download_count.
	IncrementDownloads(ctx context.Context, id uuid.UUID) error
}

// UseCase defines resource operations.
type UseCase interface {
	Create(ctx context.Context, uploaderID uuid.UUID, input *domain.CreateResourceInput) (*domain.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Resource, error)
	Update(ctx context.Context, id uuid.UUID, input *domain.UpdateResourceInput) (*domain.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Download counts a download and returns the updated resource.
	Download(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
}
