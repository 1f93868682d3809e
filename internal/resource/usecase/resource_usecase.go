package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/database"
	"github.com/allisson/campus/internal/resource/domain"
)

type resourceUseCase struct {
	txManager    database.TxManager
	resourceRepo ResourceRepository
}

func (r *resourceUseCase) Create(
	ctx context.Context,
	uploaderID uuid.UUID,
	input *domain.CreateResourceInput,
) (*domain.Resource, error) {
	category := input.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	now := time.Now().UTC()
	resource := &domain.Resource{
		ID:          uuid.Must(uuid.NewV7()),
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		FileURL:     input.FileURL,
		FileType:    input.FileType,
		FileSize:    input.FileSize,
		UploaderID:  uploaderID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (r *resourceUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	return r.resourceRepo.Get(ctx, id)
}

func (r *resourceUseCase) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Resource, error) {
	return r.resourceRepo.List(ctx, filter)
}

func (r *resourceUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateResourceInput,
) (*domain.Resource, error) {
	resource, err := r.resourceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(resource)
	resource.UpdatedAt = time.Now().UTC()

	if err := r.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (r *resourceUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return r.resourceRepo.Delete(ctx, id)
}

// Download increments and re-reads in one transaction so the returned count
// includes this download.
func (r *resourceUseCase) Download(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	var resource *domain.Resource

	err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := r.resourceRepo.IncrementDownloads(ctx, id); err != nil {
			return err
		}

		var err error
		resource, err = r.resourceRepo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resource, nil
}

// NewResourceUseCase creates a new UseCase with the provided dependencies.
func NewResourceUseCase(txManager database.TxManager, resourceRepo ResourceRepository) UseCase {
	return &resourceUseCase{txManager: txManager, resourceRepo: resourceRepo}
}
