package domain

import "github.com/google/uuid"

// Claims is the principal snapshot embedded in a session token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   Role
	Name   string
}

// ClaimsFor snapshots a principal for token issuance.
func ClaimsFor(p *Principal) Claims {
	return Claims{UserID: p.id, Email: p.email, Role: p.role, Name: p.name}
}

// Principal rebuilds the request principal from verified claims.
func (c Claims) Principal() (*Principal, error) {
	return NewPrincipal(c.UserID, c.Email, c.Role, c.Name)
}
