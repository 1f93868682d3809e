// Package http serves the event endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/event/http/dto"
	"github.com/allisson/campus/internal/event/usecase"
	"github.com/allisson/campus/internal/httputil"
)

// EventHandler handles HTTP requests for events and registrations.
type EventHandler struct {
	eventUseCase usecase.UseCase
	logger       *slog.Logger
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventUseCase usecase.UseCase, logger *slog.Logger) *EventHandler {
	return &EventHandler{eventUseCase: eventUseCase, logger: logger}
}

// RegisterRoutes mounts the event endpoints on group (normally /api/events).
func RegisterRoutes(group *gin.RouterGroup, h *EventHandler, guard *authHTTP.Guard) {
	event := func(a authDomain.Action) authDomain.Operation {
		return authDomain.Op(authDomain.ResourceEvent, a)
	}
	registration := func(a authDomain.Action) authDomain.Operation {
		return authDomain.Op(authDomain.ResourceEventRegistration, a)
	}

	group.GET("", guard.Public(event(authDomain.ActionRead)).Then(h.ListHandler)...)
	group.POST("", guard.Private(event(authDomain.ActionCreate)).Then(h.CreateHandler)...)
	group.GET("/user/my-registrations",
		guard.Private(registration(authDomain.ActionReadOwn)).Then(h.MyRegistrationsHandler)...)
	group.GET("/:id", guard.Public(event(authDomain.ActionRead)).Then(h.GetHandler)...)
	group.PUT("/:id", guard.Private(event(authDomain.ActionUpdate)).Then(h.UpdateHandler)...)
	group.DELETE("/:id", guard.Private(event(authDomain.ActionDelete)).Then(h.DeleteHandler)...)
	group.POST("/:id/register", guard.Private(registration(authDomain.ActionCreate)).Then(h.RegisterHandler)...)
	group.GET("/:id/registrations",
		guard.Private(registration(authDomain.ActionRead)).Then(h.RegistrationsHandler)...)
}

// ListHandler lists events by start date.
// GET /api/events
func (h *EventHandler) ListHandler(c *gin.Context) {
	events, err := h.eventUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"events": dto.MapEventsToResponse(events)})
}

// GetHandler returns one event.
// GET /api/events/:id
func (h *EventHandler) GetHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	event, err := h.eventUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"event": dto.MapEventToResponse(event)})
}

// CreateHandler creates an event organized by the caller.
// POST /api/events
func (h *EventHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.PrincipalFrom(c)
	event, err := h.eventUseCase.Create(c.Request.Context(), principal.ID(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"event": dto.MapEventToResponse(event)})
}

// UpdateHandler applies a partial update.
// PUT /api/events/:id
func (h *EventHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	event, err := h.eventUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"event": dto.MapEventToResponse(event)})
}

// DeleteHandler removes an event and its roster.
// DELETE /api/events/:id
func (h *EventHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.eventUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, nil)
}

// RegisterHandler puts the caller on the event roster.
// POST /api/events/:id/register
func (h *EventHandler) RegisterHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.PrincipalFrom(c)
	registration, err := h.eventUseCase.Register(c.Request.Context(), id, principal.ID())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"registration": dto.MapRegistrationToResponse(registration)})
}

// RegistrationsHandler returns the roster of an event.
// GET /api/events/:id/registrations
func (h *EventHandler) RegistrationsHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	registrations, err := h.eventUseCase.ListRegistrations(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"registrations": dto.MapRegistrationsToResponse(registrations)})
}

// MyRegistrationsHandler lists the caller's registrations.
// GET /api/events/user/my-registrations
func (h *EventHandler) MyRegistrationsHandler(c *gin.Context) {
	principal := authHTTP.PrincipalFrom(c)
	registrations, err := h.eventUseCase.ListUserRegistrations(c.Request.Context(), principal.ID())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"registrations": dto.MapRegistrationsToResponse(registrations)})
}
