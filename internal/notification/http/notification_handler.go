// Package http serves the notification inbox endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/httputil"
	"github.com/allisson/campus/internal/notification/domain"
	"github.com/allisson/campus/internal/notification/http/dto"
	"github.com/allisson/campus/internal/notification/usecase"
)

var (
	opReadOwn   = authDomain.Op(authDomain.ResourceNotification, authDomain.ActionReadOwn)
	opUpdateOwn = authDomain.Op(authDomain.ResourceNotification, authDomain.ActionUpdateOwn)
	opDeleteOwn = authDomain.Op(authDomain.ResourceNotification, authDomain.ActionDeleteOwn)
	opSend      = authDomain.Op(authDomain.ResourceNotification, authDomain.ActionCreate)
)

// NotificationHandler handles HTTP requests for notifications.
type NotificationHandler struct {
	notificationUseCase usecase.UseCase
	guard               *authHTTP.Guard
	logger              *slog.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(
	notificationUseCase usecase.UseCase,
	guard *authHTTP.Guard,
	logger *slog.Logger,
) *NotificationHandler {
	return &NotificationHandler{notificationUseCase: notificationUseCase, guard: guard, logger: logger}
}

// RegisterRoutes mounts the notification endpoints on group (normally /api/notifications).
func RegisterRoutes(group *gin.RouterGroup, h *NotificationHandler, guard *authHTTP.Guard) {
	group.GET("", guard.Private(opReadOwn).Then(h.ListHandler)...)
	group.POST("", guard.Private(opSend).Then(h.SendHandler)...)
	group.GET("/unread-count", guard.Private(opReadOwn).Then(h.UnreadCountHandler)...)
	group.PUT("/mark-all-read", guard.Private(opUpdateOwn).Then(h.MarkAllReadHandler)...)
	group.GET("/:id", guard.Private(opReadOwn).Then(h.GetHandler)...)
	group.PUT("/:id/read", guard.Private(opUpdateOwn).Then(h.MarkReadHandler)...)
	group.DELETE("/:id", guard.Private(opDeleteOwn).Then(h.DeleteHandler)...)
}

// ListHandler returns the caller's notifications newest first.
// GET /api/notifications?offset=0&limit=50
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.PrincipalFrom(c)
	notifications, err := h.notificationUseCase.ListOwn(c.Request.Context(), principal.ID(), page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, page.Body("notifications", dto.MapNotificationsToResponse(notifications), len(notifications)))
}

// UnreadCountHandler returns the caller's unread count.
// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	principal := authHTTP.PrincipalFrom(c)
	count, err := h.notificationUseCase.CountUnread(c.Request.Context(), principal.ID())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"count": count})
}

// MarkAllReadHandler marks every unread notification of the caller.
// PUT /api/notifications/mark-all-read
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	principal := authHTTP.PrincipalFrom(c)
	updated, err := h.notificationUseCase.MarkAllRead(c.Request.Context(), principal.ID())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"updated": updated})
}

// GetHandler returns one of the caller's notifications.
// GET /api/notifications/:id
func (h *NotificationHandler) GetHandler(c *gin.Context) {
	notification, ok := h.owned(c, opReadOwn)
	if !ok {
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"notification": dto.MapNotificationToResponse(notification)})
}

// MarkReadHandler marks one of the caller's notifications as read.
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	notification, ok := h.owned(c, opUpdateOwn)
	if !ok {
		return
	}

	notification, err := h.notificationUseCase.MarkRead(c.Request.Context(), notification.ID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"notification": dto.MapNotificationToResponse(notification)})
}

// DeleteHandler removes one of the caller's notifications.
// DELETE /api/notifications/:id
func (h *NotificationHandler) DeleteHandler(c *gin.Context) {
	notification, ok := h.owned(c, opDeleteOwn)
	if !ok {
		return
	}

	if err := h.notificationUseCase.Delete(c.Request.Context(), notification.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, nil)
}

// SendHandler fans a notification out to the listed users, or to everyone.
// POST /api/notifications
func (h *NotificationHandler) SendHandler(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	sent, err := h.notificationUseCase.Send(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"sent_to": sent})
}

// owned loads the :id notification and checks the caller owns it. On false the
// response has been written.
func (h *NotificationHandler) owned(c *gin.Context, op authDomain.Operation) (*domain.Notification, bool) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, false
	}

	notification, err := h.notificationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, false
	}

	if !h.guard.Owns(c, op, notification.UserID) {
		return nil, false
	}
	return notification, true
}
