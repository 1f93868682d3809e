package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/metrics"
	"github.com/allisson/campus/internal/user/domain"
)

const metricsDomain = "users"

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{next: useCase, metrics: m}
}

func (u *userUseCaseWithMetrics) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_create", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, offset, limit)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_list", start, err)
	return users, err
}

func (u *userUseCaseWithMetrics) UpdateRole(
	ctx context.Context,
	id uuid.UUID,
	role authDomain.Role,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.UpdateRole(ctx, id, role)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_update_role", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) UpdateRoleByEmail(
	ctx context.Context,
	email string,
	role authDomain.Role,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.UpdateRoleByEmail(ctx, email, role)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_update_role", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) Seed(ctx context.Context, inputs []domain.CreateUserInput) (int, error) {
	start := time.Now()
	n, err := u.next.Seed(ctx, inputs)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_seed", start, err)
	return n, err
}
