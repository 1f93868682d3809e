package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	userDomain "github.com/allisson/campus/internal/user/domain"
	userMocks "github.com/allisson/campus/internal/user/usecase/mocks"
)

func newTestUser(role authDomain.Role) *userDomain.User {
	return &userDomain.User{
		ID:    uuid.Must(uuid.NewV7()),
		Email: "jane@klh.edu",
		Name:  "Jane",
		Role:  role,
	}
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}
		user := newTestUser(authDomain.RoleFaculty)
		input := &userDomain.CreateUserInput{
			Email:    "jane@klh.edu",
			Password: "secret123",
			Name:     "Jane",
			Role:     authDomain.RoleFaculty,
		}
		mockUseCase.On("Create", ctx, input).Return(user, nil)

		var out bytes.Buffer
		err := RunCreateUser(ctx, mockUseCase, logger, IOTuple{Writer: &out},
			"jane@klh.edu", "secret123", "Jane", "faculty", "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "User created successfully!")
		assert.Contains(t, out.String(), "ID: "+user.ID.String())
		assert.Contains(t, out.String(), "Role: faculty")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}
		user := newTestUser(authDomain.RoleStudent)
		mockUseCase.On("Create", ctx, mock.Anything).Return(user, nil)

		var out bytes.Buffer
		err := RunCreateUser(ctx, mockUseCase, logger, IOTuple{Writer: &out},
			"jane@klh.edu", "secret123", "Jane", "Student", "json")
		require.NoError(t, err)

		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, user.ID.String(), result["id"])
		assert.Equal(t, "student", result["role"])
	})

	t.Run("password-prompt", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}
		mockUseCase.On("Create", ctx, mock.MatchedBy(func(in *userDomain.CreateUserInput) bool {
			return in.Password == "typed-password"
		})).Return(newTestUser(authDomain.RoleAdmin), nil)

		var out bytes.Buffer
		io := IOTuple{Reader: strings.NewReader("typed-password\n"), Writer: &out}
		err := RunCreateUser(ctx, mockUseCase, logger, io, "jane@klh.edu", "", "Jane", "admin", "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Password: ")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("empty-prompt", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}

		io := IOTuple{Reader: strings.NewReader(""), Writer: &bytes.Buffer{}}
		err := RunCreateUser(ctx, mockUseCase, logger, io, "jane@klh.edu", "", "Jane", "admin", "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no input available")
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid-role", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}

		err := RunCreateUser(ctx, mockUseCase, logger, IOTuple{Writer: &bytes.Buffer{}},
			"jane@klh.edu", "secret123", "Jane", "dean", "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid role: dean")
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}

		err := RunCreateUser(ctx, mockUseCase, logger, IOTuple{Writer: &bytes.Buffer{}},
			"jane@klh.edu", "secret123", "Jane", "student", "yaml")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format: yaml")
	})

	t.Run("duplicate-email", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}
		mockUseCase.On("Create", ctx, mock.Anything).Return(nil, userDomain.ErrUserAlreadyExists)

		err := RunCreateUser(ctx, mockUseCase, logger, IOTuple{Writer: &bytes.Buffer{}},
			"jane@klh.edu", "secret123", "Jane", "student", "text")

		require.Error(t, err)
		assert.ErrorIs(t, err, userDomain.ErrUserAlreadyExists)
	})
}

func TestRunUpdateUserRole(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("success", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}
		user := newTestUser(authDomain.RoleAdmin)
		mockUseCase.On("UpdateRoleByEmail", ctx, "jane@klh.edu", authDomain.RoleAdmin).Return(user, nil)

		var out bytes.Buffer
		err := RunUpdateUserRole(ctx, mockUseCase, logger, IOTuple{Writer: &out}, "jane@klh.edu", "admin", "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "User role updated successfully!")
		assert.Contains(t, out.String(), "Role: admin")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("not-found", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}
		mockUseCase.On("UpdateRoleByEmail", ctx, "ghost@klh.edu", authDomain.RoleFaculty).
			Return(nil, userDomain.ErrUserNotFound)

		err := RunUpdateUserRole(
			ctx, mockUseCase, logger, IOTuple{Writer: &bytes.Buffer{}}, "ghost@klh.edu", "faculty", "text",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, userDomain.ErrUserNotFound)
	})

	t.Run("invalid-role", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}

		err := RunUpdateUserRole(ctx, mockUseCase, logger, IOTuple{Writer: &bytes.Buffer{}}, "jane@klh.edu", "", "text")

		require.Error(t, err)
		mockUseCase.AssertNotCalled(t, "UpdateRoleByEmail", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRunSeed(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}
		mockUseCase.On("Seed", ctx, userDomain.DemoUsers).Return(2, nil)

		var out bytes.Buffer
		err := RunSeed(ctx, mockUseCase, logger, IOTuple{Writer: &out}, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Seeded 2 user(s), 1 already present.")
		assert.Contains(t, out.String(), "admin@klh.edu (admin)")
	})

	t.Run("json", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}
		mockUseCase.On("Seed", ctx, userDomain.DemoUsers).Return(0, nil)

		var out bytes.Buffer
		err := RunSeed(ctx, mockUseCase, logger, IOTuple{Writer: &out}, "json")
		require.NoError(t, err)

		var result map[string]int
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, 0, result["created"])
		assert.Equal(t, 3, result["skipped"])
	})

	t.Run("error", func(t *testing.T) {
		mockUseCase := &userMocks.MockUseCase{}
		mockUseCase.On("Seed", ctx, userDomain.DemoUsers).Return(0, errors.New("db down"))

		err := RunSeed(ctx, mockUseCase, logger, IOTuple{Writer: &bytes.Buffer{}}, "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to seed users")
	})
}
