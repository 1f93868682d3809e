// Package http serves the club endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/club/http/dto"
	"github.com/allisson/campus/internal/club/usecase"
	"github.com/allisson/campus/internal/httputil"
)

var opRemoveMembership = authDomain.Op(authDomain.ResourceClubMembership, authDomain.ActionDeleteOwn)

// ClubHandler handles HTTP requests for clubs and memberships.
type ClubHandler struct {
	clubUseCase usecase.UseCase
	guard       *authHTTP.Guard
	logger      *slog.Logger
}

// NewClubHandler creates a new club handler. guard performs ownership checks.
func NewClubHandler(clubUseCase usecase.UseCase, guard *authHTTP.Guard, logger *slog.Logger) *ClubHandler {
	return &ClubHandler{clubUseCase: clubUseCase, guard: guard, logger: logger}
}

// RegisterRoutes mounts the club endpoints on group (normally /api/clubs).
func RegisterRoutes(group *gin.RouterGroup, h *ClubHandler, guard *authHTTP.Guard) {
	club := func(a authDomain.Action) authDomain.Operation {
		return authDomain.Op(authDomain.ResourceClub, a)
	}
	membership := func(a authDomain.Action) authDomain.Operation {
		return authDomain.Op(authDomain.ResourceClubMembership, a)
	}

	group.GET("", guard.Public(club(authDomain.ActionRead)).Then(h.ListHandler)...)
	group.POST("", guard.Private(club(authDomain.ActionCreate)).Then(h.CreateHandler)...)
	group.GET("/user/my-clubs", guard.Private(membership(authDomain.ActionReadOwn)).Then(h.MyClubsHandler)...)
	group.DELETE("/memberships/:membershipId", guard.Private(opRemoveMembership).Then(h.RemoveMembershipHandler)...)
	group.GET("/:id", guard.Public(club(authDomain.ActionRead)).Then(h.GetHandler)...)
	group.PUT("/:id", guard.Private(club(authDomain.ActionUpdate)).Then(h.UpdateHandler)...)
	group.DELETE("/:id", guard.Private(club(authDomain.ActionDelete)).Then(h.DeleteHandler)...)
	group.POST("/:id/join", guard.Private(membership(authDomain.ActionCreate)).Then(h.JoinHandler)...)
	group.POST("/:id/leave", guard.Private(opRemoveMembership).Then(h.LeaveHandler)...)
	group.DELETE("/:id/leave", guard.Private(opRemoveMembership).Then(h.LeaveHandler)...)
	group.GET("/:id/members", guard.Private(membership(authDomain.ActionRead)).Then(h.MembersHandler)...)
}

// ListHandler lists clubs by name.
// GET /api/clubs
func (h *ClubHandler) ListHandler(c *gin.Context) {
	clubs, err := h.clubUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"clubs": dto.MapClubsToResponse(clubs)})
}

// GetHandler returns one club.
// GET /api/clubs/:id
func (h *ClubHandler) GetHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	club, err := h.clubUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"club": dto.MapClubToResponse(club)})
}

// CreateHandler creates a club. The caller presides unless president_id is given.
// POST /api/clubs
func (h *ClubHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.PrincipalFrom(c)
	club, err := h.clubUseCase.Create(c.Request.Context(), principal.ID(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"club": dto.MapClubToResponse(club)})
}

// UpdateHandler applies a partial update.
// PUT /api/clubs/:id
func (h *ClubHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	club, err := h.clubUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"club": dto.MapClubToResponse(club)})
}

// DeleteHandler removes a club and its memberships.
// DELETE /api/clubs/:id
func (h *ClubHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.clubUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, nil)
}

// JoinHandler adds the caller to a club.
// POST /api/clubs/:id/join
func (h *ClubHandler) JoinHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.PrincipalFrom(c)
	membership, err := h.clubUseCase.Join(c.Request.Context(), id, principal.ID())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"membership": dto.MapMembershipToResponse(membership)})
}

// LeaveHandler removes the caller from a club.
// POST /api/clubs/:id/leave
func (h *ClubHandler) LeaveHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.PrincipalFrom(c)
	if err := h.clubUseCase.Leave(c.Request.Context(), id, principal.ID()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, nil)
}

// RemoveMembershipHandler deletes a membership by id. Only its owner may do so.
// DELETE /api/clubs/memberships/:membershipId
func (h *ClubHandler) RemoveMembershipHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "membershipId")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	membership, err := h.clubUseCase.GetMembership(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !h.guard.Owns(c, opRemoveMembership, membership.UserID) {
		return
	}

	if err := h.clubUseCase.RemoveMembership(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, nil)
}

// MembersHandler returns the club roster.
// GET /api/clubs/:id/members
func (h *ClubHandler) MembersHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	members, err := h.clubUseCase.ListMembers(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"members": dto.MapMembershipsToResponse(members)})
}

// MyClubsHandler lists the clubs the caller joined.
// GET /api/clubs/user/my-clubs
func (h *ClubHandler) MyClubsHandler(c *gin.Context) {
	principal := authHTTP.PrincipalFrom(c)
	memberships, err := h.clubUseCase.ListUserMemberships(c.Request.Context(), principal.ID())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, gin.H{"clubs": dto.MapMembershipsToResponse(memberships)})
}
