package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authService "github.com/allisson/campus/internal/auth/service"
)

// SessionState classifies the credential carried by a request.
type SessionState int

const (
	// Anonymous means the request carried no token.
	Anonymous SessionState = iota

	// Authenticated means the token verified and Principal is set.
	Authenticated

	// Invalid means a token was present but failed verification or was revoked.
	Invalid
)

func (s SessionState) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Invalid:
		return "invalid"
	default:
		return "anonymous"
	}
}

// Resolution is the outcome of resolving a request's session.
type Resolution struct {
	State     SessionState
	Principal *authDomain.Principal
	TokenID   string
}

// SessionResolver turns a request credential into a Resolution. It is the only
// place session tokens are parsed.
type SessionResolver struct {
	codec       authService.TokenCodec
	revocations authService.RevocationList
	cookieName  string
	logger      *slog.Logger
	now         func() time.Time
}

// NewSessionResolver creates a SessionResolver. revocations may be nil.
func NewSessionResolver(
	codec authService.TokenCodec,
	revocations authService.RevocationList,
	cookieName string,
	logger *slog.Logger,
) *SessionResolver {
	return &SessionResolver{
		codec:       codec,
		revocations: revocations,
		cookieName:  cookieName,
		logger:      logger,
		now:         time.Now,
	}
}

// CookieName returns the session cookie name.
func (r *SessionResolver) CookieName() string {
	return r.cookieName
}

// Token extracts the raw token: a non-empty session cookie first, then an
// Authorization bearer header with a case-insensitive scheme.
func (r *SessionResolver) Token(req *http.Request) string {
	if cookie, err := req.Cookie(r.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	const bearerPrefix = "bearer "
	header := req.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// Resolve verifies the request's token. It never fails: a revocation store
// error resolves to Invalid.
func (r *SessionResolver) Resolve(req *http.Request) Resolution {
	token := r.Token(req)
	if token == "" {
		return Resolution{State: Anonymous}
	}

	verified, ok := r.codec.Verify(token, r.now())
	if !ok {
		return Resolution{State: Invalid}
	}

	if r.revocations != nil && r.isRevoked(req.Context(), verified.ID) {
		return Resolution{State: Invalid}
	}

	principal, err := verified.Claims.Principal()
	if err != nil {
		return Resolution{State: Invalid}
	}

	return Resolution{State: Authenticated, Principal: principal, TokenID: verified.ID}
}

func (r *SessionResolver) isRevoked(ctx context.Context, id string) bool {
	revoked, err := r.revocations.IsRevoked(ctx, id)
	if err != nil {
		r.logger.Error("session revocation check failed", slog.Any("error", err))
		return true
	}
	return revoked
}
