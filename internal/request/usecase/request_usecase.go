package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/database"
	notificationDomain "github.com/allisson/campus/internal/notification/domain"
	"github.com/allisson/campus/internal/request/domain"
)

type requestUseCase struct {
	txManager   database.TxManager
	requestRepo RequestRepository
	roleUpdater RoleUpdater
	notifier    Notifier
}

func (r *requestUseCase) Create(
	ctx context.Context,
	requester *authDomain.Principal,
	input *domain.CreateRequestInput,
) (*domain.Request, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidType
	}

	var requestedRole authDomain.Role
	if input.Type == domain.TypeRole {
		if !slices.Contains(domain.ElevatableRoles, input.RequestedRole) {
			return nil, domain.ErrRequestedRoleRequired
		}
		requestedRole = input.RequestedRole
	}

	now := time.Now().UTC()
	request := &domain.Request{
		ID:             uuid.Must(uuid.NewV7()),
		Type:           input.Type,
		Name:           input.Name,
		Description:    input.Description,
		Date:           input.Date,
		RequestedRole:  requestedRole,
		RequestedBy:    requester.ID(),
		RequesterEmail: requester.Email(),
		Status:         domain.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := r.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *requestUseCase) List(ctx context.Context, status domain.Status) ([]*domain.Request, error) {
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return r.requestRepo.List(ctx, status)
}

func (r *requestUseCase) Decide(
	ctx context.Context,
	id uuid.UUID,
	decision domain.Decision,
) (*domain.Request, error) {
	var request *domain.Request

	err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if request, err = r.requestRepo.Get(ctx, id); err != nil {
			return err
		}
		if request.Status != domain.StatusPending {
			return domain.ErrAlreadyProcessed
		}

		now := time.Now().UTC()
		if err := r.requestRepo.Transition(ctx, id, decision.Status, now); err != nil {
			return err
		}
		request.Status = decision.Status
		request.UpdatedAt = now

		if decision.Status == domain.StatusApproved && request.Type == domain.TypeRole {
			if err := r.roleUpdater.UpdateRole(ctx, request.RequestedBy, request.RequestedRole); err != nil {
				return err
			}
		}

		notification := notificationDomain.New(
			request.RequestedBy,
			decision.NotificationType,
			decision.Title(),
			decision.Message(request.Type),
			now,
		)
		return r.notifier.Create(ctx, notification)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// NewRequestUseCase creates a new UseCase with the provided dependencies.
func NewRequestUseCase(
	txManager database.TxManager,
	requestRepo RequestRepository,
	roleUpdater RoleUpdater,
	notifier Notifier,
) UseCase {
	return &requestUseCase{
		txManager:   txManager,
		requestRepo: requestRepo,
		roleUpdater: roleUpdater,
		notifier:    notifier,
	}
}
