package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authService "github.com/allisson/campus/internal/auth/service"
	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/user/domain"
)

type userUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
}

func (u *userUseCase) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = authDomain.RoleStudent
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := u.passwordService.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     domain.NormalizeEmail(input.Email),
		Password:  hash,
		Role:      role,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return u.userRepo.List(ctx, offset, limit)
}

func (u *userUseCase) UpdateRole(ctx context.Context, id uuid.UUID, role authDomain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if err := u.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	return u.userRepo.Get(ctx, id)
}

func (u *userUseCase) UpdateRoleByEmail(
	ctx context.Context,
	email string,
	role authDomain.Role,
) (*domain.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return u.UpdateRole(ctx, user.ID, role)
}

func (u *userUseCase) Seed(ctx context.Context, inputs []domain.CreateUserInput) (int, error) {
	created := 0
	for i := range inputs {
		_, err := u.Create(ctx, &inputs[i])
		if apperrors.Is(err, domain.ErrUserAlreadyExists) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// NewUserUseCase creates a new UseCase with the provided dependencies.
func NewUserUseCase(userRepo UserRepository, passwordService authService.PasswordService) UseCase {
	return &userUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}
