// Package http serves the lost-and-found endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/httputil"
	"github.com/allisson/campus/internal/lostfound/http/dto"
	"github.com/allisson/campus/internal/lostfound/usecase"
)

// LostItemHandler handles HTTP requests for lost-and-found reports.
type LostItemHandler struct {
	lostItemUseCase usecase.UseCase
	logger          *slog.Logger
}

// NewLostItemHandler creates a new lost-and-found handler.
func NewLostItemHandler(lostItemUseCase usecase.UseCase, logger *slog.Logger) *LostItemHandler {
	return &LostItemHandler{lostItemUseCase: lostItemUseCase, logger: logger}
}

// RegisterRoutes mounts the lost-and-found endpoints on group (normally /api/lostfound).
func RegisterRoutes(group *gin.RouterGroup, h *LostItemHandler, guard *authHTTP.Guard) {
	group.GET("/list",
		guard.Public(authDomain.Op(authDomain.ResourceLostFound, authDomain.ActionRead)).Then(h.ListHandler)...)
	group.POST("/report",
		guard.Public(authDomain.Op(authDomain.ResourceLostFound, authDomain.ActionCreate)).Then(h.ReportHandler)...)
}

// ListHandler lists reports newest first.
// GET /api/lostfound/list
func (h *LostItemHandler) ListHandler(c *gin.Context) {
	items, err := h.lostItemUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"items": dto.MapLostItemsToResponse(items)})
}

// ReportHandler files a report. Signed-in reporters are identified by their session.
// POST /api/lostfound/report
func (h *LostItemHandler) ReportHandler(c *gin.Context) {
	var req dto.ReportLostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var reporterEmail string
	if principal := authHTTP.PrincipalFrom(c); principal != nil {
		reporterEmail = principal.Email()
	}

	item, err := h.lostItemUseCase.Report(c.Request.Context(), req.ToInput(reporterEmail))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"item": dto.MapLostItemToResponse(item)})
}
