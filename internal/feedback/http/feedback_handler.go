// Package http serves the feedback endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/feedback/http/dto"
	"github.com/allisson/campus/internal/feedback/usecase"
	"github.com/allisson/campus/internal/httputil"
)

// FeedbackHandler handles HTTP requests for feedback.
type FeedbackHandler struct {
	feedbackUseCase usecase.UseCase
	logger          *slog.Logger
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackUseCase usecase.UseCase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedbackUseCase: feedbackUseCase, logger: logger}
}

// RegisterRoutes mounts the feedback endpoints on group (normally /api/feedback).
func RegisterRoutes(group *gin.RouterGroup, h *FeedbackHandler, guard *authHTTP.Guard) {
	group.POST("",
		guard.Public(authDomain.Op(authDomain.ResourceFeedback, authDomain.ActionCreate)).Then(h.SubmitHandler)...)
	group.GET("",
		guard.Private(authDomain.Op(authDomain.ResourceFeedback, authDomain.ActionRead)).Then(h.ListHandler)...)
}

// SubmitHandler records feedback from anyone.
// POST /api/feedback
func (h *FeedbackHandler) SubmitHandler(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	feedback, err := h.feedbackUseCase.Submit(c.Request.Context(), req.ToInput(authHTTP.PrincipalFrom(c)))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"feedback": dto.MapFeedbackToResponse(feedback)})
}

// ListHandler returns all feedback for administrators.
// GET /api/feedback
func (h *FeedbackHandler) ListHandler(c *gin.Context) {
	all, err := h.feedbackUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"feedback": dto.MapFeedbackListToResponse(all)})
}
