package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/lostfound/domain"
)

type lostItemUseCase struct {
	lostItemRepo LostItemRepository
}

func (l *lostItemUseCase) Report(ctx context.Context, input *domain.ReportInput) (*domain.LostItem, error) {
	email := strings.ToLower(strings.TrimSpace(input.ReporterEmail))
	if email == "" {
		return nil, domain.ErrReporterEmailRequired
	}

	item := &domain.LostItem{
		ID:            uuid.Must(uuid.NewV7()),
		Item:          input.Item,
		Location:      input.Location,
		Description:   input.Description,
		Status:        domain.StatusReported,
		ReporterEmail: email,
		CreatedAt:     time.Now().UTC(),
	}

	if err := l.lostItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (l *lostItemUseCase) List(ctx context.Context) ([]*domain.LostItem, error) {
	return l.lostItemRepo.List(ctx)
}

// NewLostItemUseCase creates a new UseCase with the provided dependencies.
func NewLostItemUseCase(lostItemRepo LostItemRepository) UseCase {
	return &lostItemUseCase{lostItemRepo: lostItemRepo}
}
