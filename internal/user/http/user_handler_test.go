package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/testutil"
	"github.com/allisson/campus/internal/user/domain"
	usecaseMocks "github.com/allisson/campus/internal/user/usecase/mocks"
)

func setupRouter(t *testing.T) (*gin.Engine, *usecaseMocks.MockUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testutil.NewLogger()
	resolver := authHTTP.NewSessionResolver(testutil.NewTokenCodec(t), nil, "sc_token", logger)
	guard := authHTTP.NewGuard(resolver, nil, logger)
	useCase := &usecaseMocks.MockUseCase{}

	router := gin.New()
	RegisterRoutes(router.Group("/api/admin"), NewUserHandler(useCase, logger), guard)
	return router, useCase
}

func sampleUser(role authDomain.Role) *domain.User {
	return &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     string(role) + "@klh.edu",
		Password:  "$argon2id$secret",
		Role:      role,
		Name:      "Sample",
		CreatedAt: testutil.FixedTime,
		UpdatedAt: testutil.FixedTime,
	}
}

func TestUserHandler_List(t *testing.T) {
	admin := testutil.NewPrincipal(t, authDomain.RoleAdmin)

	t.Run("Success", func(t *testing.T) {
		router, useCase := setupRouter(t)
		users := []*domain.User{sampleUser(authDomain.RoleStudent)}

		useCase.On("List", mock.Anything, 10, 5).Return(users, nil).Once()

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodGet, "/api/admin/users?offset=10&limit=5", nil), admin)
		w := testutil.Serve(router, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := testutil.DecodeBody(t, w)
		assert.Equal(t, true, body["ok"])
		list := body["users"].([]any)
		require.Len(t, list, 1)
		assert.NotContains(t, w.Body.String(), "argon2id")
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		router, _ := setupRouter(t)

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodGet, "/api/admin/users", nil),
			testutil.NewPrincipal(t, authDomain.RoleFaculty))
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "admin access required", testutil.ErrorMessage(t, w))
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		router, _ := setupRouter(t)

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodGet, "/api/admin/users?limit=500", nil), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_Create(t *testing.T) {
	admin := testutil.NewPrincipal(t, authDomain.RoleAdmin)

	t.Run("Success", func(t *testing.T) {
		router, useCase := setupRouter(t)
		created := sampleUser(authDomain.RoleStudent)

		useCase.On("Create", mock.Anything, &domain.CreateUserInput{
			Email:    "new@klh.edu",
			Password: "password1",
			Name:     "New",
		}).Return(created, nil).Once()

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodPost, "/api/admin/users",
			map[string]string{"email": "new@klh.edu", "password": "password1", "name": "New"}), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		router, _ := setupRouter(t)

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodPost, "/api/admin/users",
			map[string]string{"email": "new@klh.edu"}), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "password and name required", testutil.ErrorMessage(t, w))
	})

	t.Run("Duplicate", func(t *testing.T) {
		router, useCase := setupRouter(t)

		useCase.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrUserAlreadyExists).Once()

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodPost, "/api/admin/users",
			map[string]string{"email": "dup@klh.edu", "password": "password1", "name": "Dup"}), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "user already exists", testutil.ErrorMessage(t, w))
	})

	t.Run("InternalError", func(t *testing.T) {
		router, useCase := setupRouter(t)

		useCase.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodPost, "/api/admin/users",
			map[string]string{"email": "x@klh.edu", "password": "password1", "name": "X"}), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", testutil.ErrorMessage(t, w))
	})
}

func TestUserHandler_UpdateRole(t *testing.T) {
	admin := testutil.NewPrincipal(t, authDomain.RoleAdmin)

	t.Run("Success", func(t *testing.T) {
		router, useCase := setupRouter(t)
		user := sampleUser(authDomain.RoleFaculty)

		useCase.On("UpdateRole", mock.Anything, user.ID, authDomain.RoleFaculty).Return(user, nil).Once()

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodPut, "/api/admin/users/"+user.ID.String()+"/role",
			map[string]string{"role": "faculty"}), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"faculty"`)
	})

	t.Run("RoleRequired", func(t *testing.T) {
		router, _ := setupRouter(t)

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodPut, "/api/admin/users/"+uuid.NewString()+"/role",
			map[string]string{}), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "role required", testutil.ErrorMessage(t, w))
	})

	t.Run("InvalidRole", func(t *testing.T) {
		router, _ := setupRouter(t)

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodPut, "/api/admin/users/"+uuid.NewString()+"/role",
			map[string]string{"role": "dean"}), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid role", testutil.ErrorMessage(t, w))
	})

	t.Run("NotFound", func(t *testing.T) {
		router, useCase := setupRouter(t)
		id := uuid.Must(uuid.NewV7())

		useCase.On("UpdateRole", mock.Anything, id, authDomain.RoleAdmin).Return(nil, domain.ErrUserNotFound).Once()

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodPut, "/api/admin/users/"+id.String()+"/role",
			map[string]string{"role": "admin"}), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "user not found", testutil.ErrorMessage(t, w))
	})

	t.Run("BadID", func(t *testing.T) {
		router, _ := setupRouter(t)

		req := testutil.As(t, testutil.JSONRequest(t, http.MethodPut, "/api/admin/users/nope/role",
			map[string]string{"role": "admin"}), admin)
		w := testutil.Serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid id", testutil.ErrorMessage(t, w))
	})
}
