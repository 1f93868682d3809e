package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/metrics"
)

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{next: useCase, metrics: m}
}

// Login records metrics for login attempts. Rejected credentials count as "error".
func (s *sessionUseCaseWithMetrics) Login(ctx context.Context, email, password string) (*authDomain.Session, error) {
	start := time.Now()
	session, err := s.next.Login(ctx, email, password)
	metrics.Observe(ctx, s.metrics, "auth", "login", start, err)
	return session, err
}

// Logout records metrics for logout operations.
func (s *sessionUseCaseWithMetrics) Logout(ctx context.Context, token string) error {
	start := time.Now()
	err := s.next.Logout(ctx, token)
	metrics.Observe(ctx, s.metrics, "auth", "logout", start, err)
	return err
}

// ChangePassword records metrics for password changes.
func (s *sessionUseCaseWithMetrics) ChangePassword(
	ctx context.Context,
	userID uuid.UUID,
	currentPassword, newPassword string,
) error {
	start := time.Now()
	err := s.next.ChangePassword(ctx, userID, currentPassword, newPassword)
	metrics.Observe(ctx, s.metrics, "auth", "password_change", start, err)
	return err
}
