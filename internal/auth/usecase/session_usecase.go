package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authService "github.com/allisson/campus/internal/auth/service"
	apperrors "github.com/allisson/campus/internal/errors"
	userDomain "github.com/allisson/campus/internal/user/domain"
)

type sessionUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenCodec      authService.TokenCodec
	revocations     authService.RevocationList
	now             func() time.Time
}

func (s *sessionUseCase) Login(ctx context.Context, email, password string) (*authDomain.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, userDomain.NormalizeEmail(email))
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			// Same hashing cost as a known user.
			s.passwordService.Verify("", password)
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordService.Verify(user.Password, password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	principal, err := user.Principal()
	if err != nil {
		return nil, apperrors.Wrapf(err, "stored user %s is not a valid principal", user.ID)
	}

	issued, err := s.tokenCodec.Issue(authDomain.ClaimsFor(principal), s.now())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue session token")
	}

	return &authDomain.Session{
		Principal: principal,
		Token:     issued.Token,
		TokenID:   issued.ID,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

func (s *sessionUseCase) Logout(ctx context.Context, token string) error {
	if s.revocations == nil || token == "" {
		return nil
	}

	verified, ok := s.tokenCodec.Verify(token, s.now())
	if !ok {
		return nil
	}

	if err := s.revocations.Revoke(ctx, verified.ID, verified.ExpiresAt); err != nil {
		return apperrors.Wrap(err, "failed to revoke session token")
	}
	return nil
}

func (s *sessionUseCase) ChangePassword(
	ctx context.Context,
	userID uuid.UUID,
	currentPassword, newPassword string,
) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if !s.passwordService.Verify(user.Password, currentPassword) {
		return authDomain.ErrInvalidCredentials
	}

	hash, err := s.passwordService.Hash(newPassword)
	if err != nil {
		return apperrors.Wrap(err, "failed to hash password")
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hash)
}

// NewSessionUseCase creates a new SessionUseCase. revocations may be nil, in
// which case logout only clears the client cookie.
func NewSessionUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenCodec authService.TokenCodec,
	revocations authService.RevocationList,
) SessionUseCase {
	return &sessionUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenCodec:      tokenCodec,
		revocations:     revocations,
		now:             time.Now,
	}
}
