package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	apperrors "github.com/allisson/campus/internal/errors"
)

// sessionClaims is the JWT payload. Field names match the cookie format issued
// by earlier portal releases so existing sessions keep working.
type sessionClaims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// clockSkew tolerates replicas whose clock trails the issuer when checking iat.
// Expiry stays exact: it is checked again below without leeway.
const clockSkew = 5 * time.Second

// jwtTokenCodec implements TokenCodec with HS256.
type jwtTokenCodec struct {
	secret []byte
	newID  func() string
}

// Issue signs claims. Issuance is truncated to whole seconds, the precision of JWT dates.
func (c *jwtTokenCodec) Issue(claims authDomain.Claims, now time.Time) (IssuedToken, error) {
	issuedAt := now.UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(authDomain.SessionLifetime)
	id := c.newID()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: claims.UserID.String(),
		Role:   string(claims.Role),
		Email:  claims.Email,
		Name:   claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return IssuedToken{}, apperrors.Wrap(err, "failed to sign session token")
	}

	return IssuedToken{Token: signed, ID: id, IssuedAt: issuedAt, ExpiresAt: expiresAt}, nil
}

// Verify checks signature, algorithm, expiry and payload shape.
func (c *jwtTokenCodec) Verify(token string, now time.Time) (VerifiedToken, bool) {
	if token == "" {
		return VerifiedToken{}, false
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockSkew),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !parsed.Valid {
		return VerifiedToken{}, false
	}

	// Leeway extends exp inside the library, so expiry is enforced here; now == exp is expired.
	expiresAt := claims.ExpiresAt.UTC()
	if !now.Before(expiresAt) {
		return VerifiedToken{}, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return VerifiedToken{}, false
	}
	role, ok := authDomain.ParseRole(claims.Role)
	if !ok {
		return VerifiedToken{}, false
	}

	verified := VerifiedToken{
		Claims: authDomain.Claims{
			UserID: userID,
			Email:  claims.Email,
			Role:   role,
			Name:   claims.Name,
		},
		ID:        claims.ID,
		ExpiresAt: expiresAt,
	}
	if claims.IssuedAt != nil {
		verified.IssuedAt = claims.IssuedAt.UTC()
	}

	return verified, true
}

// NewTokenCodec creates an HS256 TokenCodec. The secret must not be empty.
func NewTokenCodec(secret []byte) (TokenCodec, error) {
	if len(secret) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "session secret required")
	}
	return &jwtTokenCodec{
		secret: secret,
		newID:  func() string { return uuid.Must(uuid.NewV7()).String() },
	}, nil
}
