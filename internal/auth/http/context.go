// Package http resolves campus sessions from requests, gates routes with the role
// matrix and serves the login, logout, me and password endpoints.
package http

import (
	"context"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
)

// principalKey is a context key type for storing the request principal.
type principalKey struct{}

// WithPrincipal stores an authenticated principal in the context.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the principal from the context.
// Returns (nil, false) for anonymous requests.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok && principal != nil
}

// PrincipalFrom is GetPrincipal for a gin context. It returns nil for anonymous requests.
func PrincipalFrom(c *gin.Context) *authDomain.Principal {
	principal, _ := GetPrincipal(c.Request.Context())
	return principal
}
