// Package http serves the request review endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/httputil"
	"github.com/allisson/campus/internal/request/domain"
	"github.com/allisson/campus/internal/request/http/dto"
	"github.com/allisson/campus/internal/request/usecase"
)

// RequestHandler handles HTTP requests for event, club and role requests.
type RequestHandler struct {
	requestUseCase usecase.UseCase
	logger         *slog.Logger
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(requestUseCase usecase.UseCase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{requestUseCase: requestUseCase, logger: logger}
}

// RegisterRoutes mounts the request endpoints on group (normally /api/requests).
func RegisterRoutes(group *gin.RouterGroup, h *RequestHandler, guard *authHTTP.Guard) {
	op := func(a authDomain.Action) authDomain.Operation {
		return authDomain.Op(authDomain.ResourceRequest, a)
	}

	group.GET("", guard.Private(op(authDomain.ActionRead)).Then(h.ListHandler)...)
	group.POST("", guard.Private(op(authDomain.ActionCreate)).Then(h.CreateHandler)...)
	group.POST("/:id/approve", guard.Private(op(authDomain.ActionUpdate)).Then(h.decide(domain.Approve))...)
	group.POST("/:id/reject", guard.Private(op(authDomain.ActionUpdate)).Then(h.decide(domain.Reject))...)
}

// ListHandler returns requests by status, pending when unset.
// GET /api/requests?status=
func (h *RequestHandler) ListHandler(c *gin.Context) {
	requests, err := h.requestUseCase.List(c.Request.Context(), domain.Status(c.Query("status")))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"requests": dto.MapRequestsToResponse(requests)})
}

// CreateHandler submits a request as the caller.
// POST /api/requests
func (h *RequestHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	request, err := h.requestUseCase.Create(c.Request.Context(), authHTTP.PrincipalFrom(c), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"request": dto.MapRequestToResponse(request)})
}

// decide returns the handler for POST /api/requests/:id/approve and /reject.
func (h *RequestHandler) decide(decision domain.Decision) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httputil.ParseUUIDParam(c, "id")
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}

		request, err := h.requestUseCase.Decide(c.Request.Context(), id, decision)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}

		httputil.OK(c, http.StatusOK, gin.H{"request": dto.MapRequestToResponse(request)})
	}
}
