package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/auth/usecase"
	usecaseMocks "github.com/allisson/campus/internal/auth/usecase/mocks"
	metricsMocks "github.com/allisson/campus/internal/metrics/mocks"
)

func TestSessionUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Login success", func(t *testing.T) {
		next := &usecaseMocks.MockSessionUseCase{}
		m := &metricsMocks.MockBusinessMetrics{}
		uc := usecase.NewSessionUseCaseWithMetrics(next, m)
		session := &authDomain.Session{Token: "t"}

		next.On("Login", ctx, "a@klh.edu", "pw").Return(session, nil).Once()
		m.ExpectOperation(ctx, "auth", "login", "success")

		res, err := uc.Login(ctx, "a@klh.edu", "pw")
		assert.NoError(t, err)
		assert.Equal(t, session, res)
		m.AssertExpectations(t)
	})

	t.Run("Login rejected", func(t *testing.T) {
		next := &usecaseMocks.MockSessionUseCase{}
		m := &metricsMocks.MockBusinessMetrics{}
		uc := usecase.NewSessionUseCaseWithMetrics(next, m)

		next.On("Login", ctx, "a@klh.edu", "pw").Return(nil, authDomain.ErrInvalidCredentials).Once()
		m.ExpectOperation(ctx, "auth", "login", "rejected")

		res, err := uc.Login(ctx, "a@klh.edu", "pw")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.Nil(t, res)
		m.AssertExpectations(t)
	})

	t.Run("Logout and ChangePassword", func(t *testing.T) {
		next := &usecaseMocks.MockSessionUseCase{}
		m := &metricsMocks.MockBusinessMetrics{}
		uc := usecase.NewSessionUseCaseWithMetrics(next, m)
		id := uuid.Must(uuid.NewV7())

		next.On("Logout", ctx, "t").Return(nil).Once()
		next.On("ChangePassword", ctx, id, "old", "new").Return(errors.New("x")).Once()
		m.ExpectOperation(ctx, "auth", "logout", "success")
		m.ExpectOperation(ctx, "auth", "password_change", "error")

		assert.NoError(t, uc.Logout(ctx, "t"))
		assert.Error(t, uc.ChangePassword(ctx, id, "old", "new"))
		m.AssertExpectations(t)
	})
}
