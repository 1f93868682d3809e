package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/httputil"
)

// RequireSession rejects requests without a valid session.
//
//   - No token → 401 "authentication required"
//   - Invalid, expired or revoked token → 401 "invalid token"
//
// On success the principal is stored in the request context.
func RequireSession(resolver *SessionResolver, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolution := resolver.Resolve(c.Request)

		switch resolution.State {
		case Anonymous:
			logger.Debug("authentication failed: no session credential")
			httputil.HandleErrorGin(c, authDomain.ErrAuthenticationRequired, logger)
			c.Abort()
			return
		case Invalid:
			logger.Debug("authentication failed: invalid session token")
			httputil.HandleErrorGin(c, authDomain.ErrInvalidToken, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), resolution.Principal))
		c.Next()
	}
}

// OptionalSession attaches the principal when the request carries a valid
// session and treats everything else as anonymous. It never rejects.
func OptionalSession(resolver *SessionResolver, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolution := resolver.Resolve(c.Request)

		if resolution.State == Authenticated {
			c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), resolution.Principal))
		} else if resolution.State == Invalid {
			logger.Debug("ignoring invalid session token on optional route")
		}

		c.Next()
	}
}

// RequireOperation checks the role matrix for op. It must run after
// RequireSession or OptionalSession. Ownership of self-scoped operations is
// checked later by the handler with authDomain.AuthorizeTarget.
func RequireOperation(op authDomain.Operation, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFrom(c)

		decision := authDomain.Authorize(principal, op)
		if !decision.Allowed {
			logger.Debug("authorization denied",
				slog.String("operation", op.String()),
				slog.String("reason", string(decision.Reason)))
			httputil.HandleErrorGin(c, authDomain.DecisionError(decision), logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthorizeTarget checks op against the record owned by ownerID and writes the
// denial response when it fails. It reports whether the handler may continue.
func AuthorizeTarget(c *gin.Context, op authDomain.Operation, ownerID uuid.UUID, logger *slog.Logger) bool {
	decision := authDomain.AuthorizeTarget(PrincipalFrom(c), op, ownerID)
	if decision.Allowed {
		return true
	}

	logger.Debug("ownership check denied",
		slog.String("operation", op.String()),
		slog.String("reason", string(decision.Reason)))
	httputil.HandleErrorGin(c, authDomain.DecisionError(decision), logger)
	return false
}
