// Package http serves the resource library endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/httputil"
	"github.com/allisson/campus/internal/resource/domain"
	"github.com/allisson/campus/internal/resource/http/dto"
	"github.com/allisson/campus/internal/resource/usecase"
)

// ResourceHandler handles HTTP requests for library resources.
type ResourceHandler struct {
	resourceUseCase usecase.UseCase
	logger          *slog.Logger
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(resourceUseCase usecase.UseCase, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{resourceUseCase: resourceUseCase, logger: logger}
}

// RegisterRoutes mounts the resource endpoints on group (normally /api/resources).
func RegisterRoutes(group *gin.RouterGroup, h *ResourceHandler, guard *authHTTP.Guard) {
	op := func(a authDomain.Action) authDomain.Operation {
		return authDomain.Op(authDomain.ResourceLibraryItem, a)
	}
	read := guard.Public(op(authDomain.ActionRead))

	group.GET("", read.Then(h.ListHandler)...)
	group.POST("", guard.Private(op(authDomain.ActionCreate)).Then(h.CreateHandler)...)
	group.GET("/category/:category", read.Then(h.ListByCategoryHandler)...)
	group.GET("/search/:query", read.Then(h.SearchHandler)...)
	group.GET("/:id", read.Then(h.GetHandler)...)
	group.PUT("/:id", guard.Private(op(authDomain.ActionUpdate)).Then(h.UpdateHandler)...)
	group.DELETE("/:id", guard.Private(op(authDomain.ActionDelete)).Then(h.DeleteHandler)...)
	group.POST("/:id/download", read.Then(h.DownloadHandler)...)
}

// ListHandler lists resources newest first.
// GET /api/resources?category=&q=
func (h *ResourceHandler) ListHandler(c *gin.Context) {
	h.list(c, domain.ListFilter{Category: c.Query("category"), Query: c.Query("q")})
}

// ListByCategoryHandler lists the resources in one category.
// GET /api/resources/category/:category
func (h *ResourceHandler) ListByCategoryHandler(c *gin.Context) {
	h.list(c, domain.ListFilter{Category: c.Param("category")})
}

// SearchHandler matches the query against titles and descriptions.
// GET /api/resources/search/:query
func (h *ResourceHandler) SearchHandler(c *gin.Context) {
	h.list(c, domain.ListFilter{Query: c.Param("query")})
}

func (h *ResourceHandler) list(c *gin.Context, filter domain.ListFilter) {
	resources, err := h.resourceUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"resources": dto.MapResourcesToResponse(resources)})
}

// GetHandler returns one resource.
// GET /api/resources/:id
func (h *ResourceHandler) GetHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	resource, err := h.resourceUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"resource": dto.MapResourceToResponse(resource)})
}

// CreateHandler uploads a resource entry owned by the caller.
// POST /api/resources
func (h *ResourceHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.PrincipalFrom(c)
	resource, err := h.resourceUseCase.Create(c.Request.Context(), principal.ID(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"resource": dto.MapResourceToResponse(resource)})
}

// UpdateHandler applies a partial update.
// PUT /api/resources/:id
func (h *ResourceHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	resource, err := h.resourceUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"resource": dto.MapResourceToResponse(resource)})
}

// DeleteHandler removes a resource.
// DELETE /api/resources/:id
func (h *ResourceHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.resourceUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, nil)
}

// DownloadHandler counts a download and returns the file location.
// POST /api/resources/:id/download
func (h *ResourceHandler) DownloadHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	resource, err := h.resourceUseCase.Download(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{
		"file_url":       resource.FileURL,
		"download_count": resource.DownloadCount,
	})
}
