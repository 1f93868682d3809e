// Package service provides the technical services behind campus sessions: password
// hashing, session token signing, the optional revocation list and signing secret
// resolution.
package service

import (
	"context"
	"time"

	authDomain "github.com/allisson/campus/internal/auth/domain"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash produces an Argon2id PHC string for plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. It runs in constant time with
	// respect to the plaintext and also accepts bcrypt hashes. An empty hash is
	// checked against a dummy value so unknown users cost the same as known ones.
	Verify(hash, plaintext string) bool
}

// IssuedToken is the result of signing a session.
type IssuedToken struct {
	Token     string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// VerifiedToken is a token that passed signature and expiry checks.
type VerifiedToken struct {
	Claims    authDomain.Claims
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec signs and verifies session tokens. Both operations are pure given now.
type TokenCodec interface {
	// Issue signs claims with an expiry of now + authDomain.SessionLifetime.
	Issue(claims authDomain.Claims, now time.Time) (IssuedToken, error)

	// Verify returns the embedded claims, or false for a bad signature, malformed
	// payload, unexpected algorithm or now at or past the expiry. It never errors.
	Verify(token string, now time.Time) (VerifiedToken, bool)
}

// RevocationList records session token ids invalidated before their natural expiry.
type RevocationList interface {
	// Revoke adds id to the list until expiresAt.
	Revoke(ctx context.Context, id string, expiresAt time.Time) error

	// IsRevoked reports whether id has been revoked.
	IsRevoked(ctx context.Context, id string) (bool, error)
}
