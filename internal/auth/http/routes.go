package http

import (
	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
)

// RegisterRoutes mounts the session endpoints on group. loginLimiter may be nil.
func RegisterRoutes(group *gin.RouterGroup, h *SessionHandler, guard *Guard, loginLimiter *RateLimiter) {
	login := []gin.HandlerFunc{h.LoginHandler}
	if loginLimiter != nil {
		login = append([]gin.HandlerFunc{LoginRateLimitMiddleware(loginLimiter, h.logger)}, login...)
	}

	group.POST("/login", login...)
	group.POST("/logout", h.LogoutHandler)
	group.GET("/me", h.MeHandler)
	group.PUT("/password",
		guard.Private(authDomain.Op(authDomain.ResourceUser, authDomain.ActionUpdateOwn)).
			Then(h.ChangePasswordHandler)...)
}
