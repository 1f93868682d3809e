package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/club/domain"
	"github.com/allisson/campus/internal/metrics"
)

const metricsDomain = "clubs"

// clubUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type clubUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewClubUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewClubUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &clubUseCaseWithMetrics{next: useCase, metrics: m}
}

func (c *clubUseCaseWithMetrics) Create(
	ctx context.Context,
	creatorID uuid.UUID,
	input *domain.CreateClubInput,
) (*domain.Club, error) {
	start := time.Now()
	club, err := c.next.Create(ctx, creatorID, input)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_create", start, err)
	return club, err
}

func (c *clubUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	start := time.Now()
	club, err := c.next.Get(ctx, id)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_get", start, err)
	return club, err
}

func (c *clubUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Club, error) {
	start := time.Now()
	clubs, err := c.next.List(ctx)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_list", start, err)
	return clubs, err
}

func (c *clubUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateClubInput,
) (*domain.Club, error) {
	start := time.Now()
	club, err := c.next.Update(ctx, id, input)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_update", start, err)
	return club, err
}

func (c *clubUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, id)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_delete", start, err)
	return err
}

func (c *clubUseCaseWithMetrics) Join(ctx context.Context, clubID, userID uuid.UUID) (*domain.Membership, error) {
	start := time.Now()
	membership, err := c.next.Join(ctx, clubID, userID)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_join", start, err)
	return membership, err
}

func (c *clubUseCaseWithMetrics) Leave(ctx context.Context, clubID, userID uuid.UUID) error {
	start := time.Now()
	err := c.next.Leave(ctx, clubID, userID)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_leave", start, err)
	return err
}

func (c *clubUseCaseWithMetrics) GetMembership(ctx context.Context, id uuid.UUID) (*domain.Membership, error) {
	start := time.Now()
	membership, err := c.next.GetMembership(ctx, id)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_membership_get", start, err)
	return membership, err
}

func (c *clubUseCaseWithMetrics) RemoveMembership(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := c.next.RemoveMembership(ctx, id)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_membership_delete", start, err)
	return err
}

func (c *clubUseCaseWithMetrics) ListMembers(ctx context.Context, clubID uuid.UUID) ([]*domain.Membership, error) {
	start := time.Now()
	members, err := c.next.ListMembers(ctx, clubID)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_member_list", start, err)
	return members, err
}

func (c *clubUseCaseWithMetrics) ListUserMemberships(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Membership, error) {
	start := time.Now()
	memberships, err := c.next.ListUserMemberships(ctx, userID)
	metrics.Observe(ctx, c.metrics, metricsDomain, "club_member_list_own", start, err)
	return memberships, err
}
