package http

import (
	"log/slog"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
)

// Chain is an ordered list of route middleware.
type Chain []gin.HandlerFunc

// Then returns the chain followed by handler, ready to pass to a router method.
func (c Chain) Then(handler gin.HandlerFunc) []gin.HandlerFunc {
	return append(slices.Clone(c), handler)
}

// Guard builds the session and authorization middleware for each route.
type Guard struct {
	resolver *SessionResolver
	limiter  *RateLimiter
	logger   *slog.Logger
}

// NewGuard creates a Guard. limiter may be nil to disable per-principal limits.
func NewGuard(resolver *SessionResolver, limiter *RateLimiter, logger *slog.Logger) *Guard {
	return &Guard{resolver: resolver, limiter: limiter, logger: logger}
}

// Resolver returns the session resolver shared by the guard's middleware.
func (g *Guard) Resolver() *SessionResolver {
	return g.resolver
}

// Public admits anonymous callers. The session is attached when valid and op is
// checked against the matrix.
func (g *Guard) Public(op authDomain.Operation) Chain {
	return Chain{
		OptionalSession(g.resolver, g.logger),
		RequireOperation(op, g.logger),
	}
}

// Private requires a valid session, applies the per-principal rate limit and
// checks op against the matrix.
func (g *Guard) Private(op authDomain.Operation) Chain {
	chain := Chain{RequireSession(g.resolver, g.logger)}
	if g.limiter != nil {
		chain = append(chain, RateLimitMiddleware(g.limiter, g.logger))
	}
	return append(chain, RequireOperation(op, g.logger))
}

// Owns checks a self-scoped op against the record owner. See AuthorizeTarget.
func (g *Guard) Owns(c *gin.Context, op authDomain.Operation, ownerID uuid.UUID) bool {
	return AuthorizeTarget(c, op, ownerID, g.logger)
}
