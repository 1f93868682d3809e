package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/auth/http/dto"
	authUseCase "github.com/allisson/campus/internal/auth/usecase"
	"github.com/allisson/campus/internal/httputil"
)

// SessionHandler serves the /api/auth endpoints.
type SessionHandler struct {
	sessionUseCase authUseCase.SessionUseCase
	resolver       *SessionResolver
	cookieSecure   bool
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(
	sessionUseCase authUseCase.SessionUseCase,
	resolver *SessionResolver,
	cookieSecure bool,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		resolver:       resolver,
		cookieSecure:   cookieSecure,
		logger:         logger,
	}
}

// LoginHandler verifies credentials, sets the session cookie and returns the
// role, dashboard redirect and token.
// POST /api/auth/login
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	session, err := h.sessionUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.setCookie(c, session.Token, int(authDomain.SessionLifetime.Seconds()))
	httputil.OK(c, http.StatusOK, dto.LoginPayload(session))
}

// LogoutHandler clears the session cookie and revokes the token when a
// revocation list is configured. It always succeeds.
// POST /api/auth/logout
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	if err := h.sessionUseCase.Logout(c.Request.Context(), h.resolver.Token(c.Request)); err != nil {
		h.logger.Error("logout could not revoke session", slog.Any("error", err))
	}

	h.setCookie(c, "", -1)
	httputil.OK(c, http.StatusOK, nil)
}

// MeHandler reports the current session. It never fails.
// GET /api/auth/me
func (h *SessionHandler) MeHandler(c *gin.Context) {
	resolution := h.resolver.Resolve(c.Request)
	if resolution.State != Authenticated {
		c.JSON(http.StatusOK, gin.H{"logged": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logged": true,
		"user":   dto.MapPrincipalToResponse(resolution.Principal),
	})
}

// ChangePasswordHandler replaces the caller's own password.
// PUT /api/auth/password
func (h *SessionHandler) ChangePasswordHandler(c *gin.Context) {
	principal := PrincipalFrom(c)
	if principal == nil {
		httputil.HandleErrorGin(c, authDomain.ErrAuthenticationRequired, h.logger)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	err := h.sessionUseCase.ChangePassword(
		c.Request.Context(),
		principal.ID(),
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, nil)
}

func (h *SessionHandler) setCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.resolver.CookieName(),
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
