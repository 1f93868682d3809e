// Package http serves the comment endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/comment/domain"
	"github.com/allisson/campus/internal/comment/http/dto"
	"github.com/allisson/campus/internal/comment/usecase"
	"github.com/allisson/campus/internal/httputil"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	commentUseCase usecase.UseCase
	logger         *slog.Logger
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentUseCase usecase.UseCase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase, logger: logger}
}

// RegisterRoutes mounts the comment endpoints on group (normally /api/comments).
func RegisterRoutes(group *gin.RouterGroup, h *CommentHandler, guard *authHTTP.Guard) {
	op := func(a authDomain.Action) authDomain.Operation {
		return authDomain.Op(authDomain.ResourceComment, a)
	}

	group.POST("", guard.Private(op(authDomain.ActionCreate)).Then(h.CreateHandler)...)
	group.GET("/:itemType/:itemId", guard.Public(op(authDomain.ActionRead)).Then(h.ListHandler)...)
	group.DELETE("/:id", guard.Private(op(authDomain.ActionDelete)).Then(h.DeleteHandler)...)
}

// ListHandler returns an item's comments oldest first.
// GET /api/comments/:itemType/:itemId
func (h *CommentHandler) ListHandler(c *gin.Context) {
	itemID, err := httputil.ParseUUIDParam(c, "itemId")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	comments, err := h.commentUseCase.ListByItem(c.Request.Context(), domain.ItemType(c.Param("itemType")), itemID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"comments": dto.MapCommentsToResponse(comments)})
}

// CreateHandler posts a comment as the caller.
// POST /api/comments
func (h *CommentHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	comment, err := h.commentUseCase.Create(c.Request.Context(), authHTTP.PrincipalFrom(c), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"comment": dto.MapCommentToResponse(comment)})
}

// DeleteHandler removes a comment.
// DELETE /api/comments/:id
func (h *CommentHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.commentUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, nil)
}
