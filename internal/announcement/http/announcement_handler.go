// Package http serves the announcement endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/campus/internal/announcement/http/dto"
	"github.com/allisson/campus/internal/announcement/usecase"
	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/httputil"
)

// AnnouncementHandler handles HTTP requests for announcements.
type AnnouncementHandler struct {
	announcementUseCase usecase.UseCase
	logger              *slog.Logger
}

// NewAnnouncementHandler creates a new announcement handler.
func NewAnnouncementHandler(announcementUseCase usecase.UseCase, logger *slog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{announcementUseCase: announcementUseCase, logger: logger}
}

// RegisterRoutes mounts the announcement endpoints on group (normally /api/announcements).
func RegisterRoutes(group *gin.RouterGroup, h *AnnouncementHandler, guard *authHTTP.Guard) {
	op := func(a authDomain.Action) authDomain.Operation {
		return authDomain.Op(authDomain.ResourceAnnouncement, a)
	}

	group.GET("", guard.Public(op(authDomain.ActionRead)).Then(h.ListHandler)...)
	group.POST("", guard.Private(op(authDomain.ActionCreate)).Then(h.CreateHandler)...)
	group.GET("/:id", guard.Public(op(authDomain.ActionRead)).Then(h.GetHandler)...)
	group.PUT("/:id", guard.Private(op(authDomain.ActionUpdate)).Then(h.UpdateHandler)...)
	group.DELETE("/:id", guard.Private(op(authDomain.ActionDelete)).Then(h.DeleteHandler)...)
}

// ListHandler lists announcements newest first.
// GET /api/announcements?category=
func (h *AnnouncementHandler) ListHandler(c *gin.Context) {
	announcements, err := h.announcementUseCase.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"announcements": dto.MapAnnouncementsToResponse(announcements)})
}

// GetHandler returns one announcement.
// GET /api/announcements/:id
func (h *AnnouncementHandler) GetHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	announcement, err := h.announcementUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"announcement": dto.MapAnnouncementToResponse(announcement)})
}

// CreateHandler posts an announcement authored by the caller.
// POST /api/announcements
func (h *AnnouncementHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.PrincipalFrom(c)
	announcement, err := h.announcementUseCase.Create(c.Request.Context(), principal.ID(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"announcement": dto.MapAnnouncementToResponse(announcement)})
}

// UpdateHandler applies a partial update.
// PUT /api/announcements/:id
func (h *AnnouncementHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	announcement, err := h.announcementUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"announcement": dto.MapAnnouncementToResponse(announcement)})
}

// DeleteHandler removes an announcement.
// DELETE /api/announcements/:id
func (h *AnnouncementHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.announcementUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, nil)
}
