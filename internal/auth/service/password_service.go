package service

import (
	"strings"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/allisson/campus/internal/errors"
)

// dummyPassword backs the equal-cost check for unknown users.
const dummyPassword = "campus-dummy-password"

// passwordService implements PasswordService using Argon2id, with bcrypt
// verification for imported hashes.
type passwordService struct {
	hasher    *pwdhash.PasswordHasher
	dummyHash string
}

// Hash hashes plaintext using Argon2id.
func (s *passwordService) Hash(plaintext string) (string, error) {
	hash, err := s.hasher.Hash([]byte(plaintext))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// Verify compares plaintext against hash.
func (s *passwordService) Verify(hash, plaintext string) bool {
	if hash == "" {
		_, _ = s.hasher.Verify([]byte(plaintext), s.dummyHash)
		return false
	}

	if isBcrypt(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	}

	ok, err := s.hasher.Verify([]byte(plaintext), hash)
	if err != nil {
		return false
	}
	return ok
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}

// NewPasswordService creates a PasswordService using the Moderate Argon2id policy.
func NewPasswordService() (PasswordService, error) {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	dummyHash, err := hasher.Hash([]byte(dummyPassword))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash dummy password")
	}

	return &passwordService{hasher: hasher, dummyHash: dummyHash}, nil
}
