package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authService "github.com/allisson/campus/internal/auth/service"
)

// SessionSecret signs tokens issued in tests.
const SessionSecret = "test-session-secret"

// NewTokenCodec returns a codec keyed with SessionSecret.
func NewTokenCodec(t *testing.T) authService.TokenCodec {
	t.Helper()

	codec, err := authService.NewTokenCodec([]byte(SessionSecret))
	require.NoError(t, err)
	return codec
}

// NewPrincipal returns a principal with a fresh id and the given role.
func NewPrincipal(t *testing.T, role authDomain.Role) *authDomain.Principal {
	t.Helper()

	p, err := authDomain.NewPrincipal(uuid.Must(uuid.NewV7()), string(role)+"@klh.edu", role, "Test "+string(role))
	require.NoError(t, err)
	return p
}

// BearerHeader issues a session token for p and returns it as an Authorization header value.
func BearerHeader(t *testing.T, codec authService.TokenCodec, p *authDomain.Principal) string {
	t.Helper()

	issued, err := codec.Issue(authDomain.ClaimsFor(p), time.Now())
	require.NoError(t, err)
	return "Bearer " + issued.Token
}
