package dto

import (
	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/campus/internal/auth/domain"
)

// PrincipalResponse is the public view of the session principal.
type PrincipalResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// MapPrincipalToResponse converts a principal to its response shape.
func MapPrincipalToResponse(p *authDomain.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:    p.ID().String(),
		Email: p.Email(),
		Role:  string(p.Role()),
		Name:  p.Name(),
	}
}

// LoginPayload builds the extra fields of a successful login body.
func LoginPayload(session *authDomain.Session) gin.H {
	return gin.H{
		"role":     string(session.Principal.Role()),
		"redirect": session.Redirect(),
		"token":    session.Token,
	}
}
