// Package usecase implements request submission and admin review.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	notificationDomain "github.com/allisson/campus/internal/notification/domain"
	"github.com/allisson/campus/internal/request/domain"
)

// RequestRepository persists requests.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.Request) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Request, error)

	// List returns requests with the given status newest first.
	List(ctx context.Context, status domain.Status) ([]*domain.Request, error)

	// Transition moves a pending request to status. It returns
	// domain.ErrAlreadyProcessed when the request is no longer pending.
	Transition(ctx context.Context, id uuid.UUID, status domain.Status, updatedAt time.Time) error
}

// RoleUpdater changes a user's role when a role request is approved.
type RoleUpdater interface {
	UpdateRole(ctx context.Context, id uuid.UUID, role authDomain.Role) error
}

// Notifier stores the requester's notification.
type Notifier interface {
	Create(ctx context.Context, notification *notificationDomain.Notification) error
}

// UseCase defines request operations.
type UseCase interface {
	Create(ctx context.Context, requester *authDomain.Principal, input *domain.CreateRequestInput) (*domain.Request, error)
	List(ctx context.Context, status domain.Status) ([]*domain.Request, error)

	// Decide applies decision to a pending request, notifies the requester and,
	// for an approved role request, updates the requester's role. All writes
	// share one transaction.
	Decide(ctx context.Context, id uuid.UUID, decision domain.Decision) (*domain.Request, error)
}
