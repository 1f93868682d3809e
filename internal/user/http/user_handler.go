// Package http serves the admin user management endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/httputil"
	"github.com/allisson/campus/internal/user/http/dto"
	"github.com/allisson/campus/internal/user/usecase"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userUseCase usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: userUseCase, logger: logger}
}

// RegisterRoutes mounts the user endpoints on group (normally /api/admin).
func RegisterRoutes(group *gin.RouterGroup, h *UserHandler, guard *authHTTP.Guard) {
	op := func(a authDomain.Action) authDomain.Operation {
		return authDomain.Op(authDomain.ResourceUser, a)
	}

	group.GET("/users", guard.Private(op(authDomain.ActionRead)).Then(h.ListHandler)...)
	group.POST("/users", guard.Private(op(authDomain.ActionCreate)).Then(h.CreateHandler)...)
	group.PUT("/users/:id/role", guard.Private(op(authDomain.ActionUpdate)).Then(h.UpdateRoleHandler)...)
}

// ListHandler lists users with offset/limit pagination.
// GET /api/admin/users
func (h *UserHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, page.Body("users", dto.MapUsersToResponse(users), len(users)))
}

// CreateHandler creates a user. The role defaults to student.
// POST /api/admin/users
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"user": dto.MapUserToResponse(user)})
}

// UpdateRoleHandler reassigns a user's role.
// PUT /api/admin/users/:id/role
func (h *UserHandler) UpdateRoleHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.UpdateRole(c.Request.Context(), id, authDomain.Role(req.Role))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"user": dto.MapUserToResponse(user)})
}
