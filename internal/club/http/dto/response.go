package dto

import (
	"time"

	"github.com/allisson/campus/internal/club/domain"
)

// ClubResponse is the public view of a club.
type ClubResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	PresidentID   string    `json:"president_id"`
	PresidentName string    `json:"president_name"`
	MemberCount   int       `json:"member_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MembershipResponse is one membership. Rosters fill the user fields and
// personal listings fill the club fields.
type MembershipResponse struct {
	ID           string    `json:"id"`
	ClubID       string    `json:"club_id"`
	ClubName     string    `json:"club_name,omitempty"`
	ClubCategory string    `json:"club_category,omitempty"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"name,omitempty"`
	UserEmail    string    `json:"email,omitempty"`
	UserRole     string    `json:"role,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
}

// MapClubToResponse converts a domain club.
func MapClubToResponse(c *domain.Club) ClubResponse {
	return ClubResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Description:   c.Description,
		Category:      c.Category,
		PresidentID:   c.PresidentID.String(),
		PresidentName: c.PresidentName,
		MemberCount:   c.MemberCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// MapClubsToResponse converts a list of clubs.
func MapClubsToResponse(clubs []*domain.Club) []ClubResponse {
	out := make([]ClubResponse, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, MapClubToResponse(c))
	}
	return out
}

// MapMembershipToResponse converts a domain membership.
func MapMembershipToResponse(m *domain.Membership) MembershipResponse {
	return MembershipResponse{
		ID:           m.ID.String(),
		ClubID:       m.ClubID.String(),
		ClubName:     m.ClubName,
		ClubCategory: m.ClubCategory,
		UserID:       m.UserID.String(),
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		JoinedAt:     m.JoinedAt,
	}
}

// MapMembershipsToResponse converts a list of memberships.
func MapMembershipsToResponse(memberships []*domain.Membership) []MembershipResponse {
	out := make([]MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, MapMembershipToResponse(m))
	}
	return out
}
