// Package usecase implements lost-and-found reporting.
package usecase

import (
	"context"

	"github.com/allisson/campus/internal/lostfound/domain"
)

// LostItemRepository persists lost-and-found reports.
type LostItemRepository interface {
	Create(ctx context.Context, item *domain.LostItem) error

	// List returns every report newest first.
	List(ctx context.Context) ([]*domain.LostItem, error)
}

// UseCase defines lost-and-found operations.
type UseCase interface {
	Report(ctx context.Context, input *domain.ReportInput) (*domain.LostItem, error)
	List(ctx context.Context) ([]*domain.LostItem, error)
}
