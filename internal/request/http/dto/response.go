package dto

import (
	"time"

	"github.com/allisson/campus/internal/request/domain"
)

// RequestResponse is the public view of a request.
type RequestResponse struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Date           *time.Time `json:"date"`
	RequestedRole  *string    `json:"requested_role"`
	RequestedBy    string     `json:"requested_by"`
	RequesterEmail string     `json:"requester_email"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// MapRequestToResponse converts a domain request.
func MapRequestToResponse(r *domain.Request) RequestResponse {
	resp := RequestResponse{
		ID:             r.ID.String(),
		Type:           string(r.Type),
		Name:           r.Name,
		Description:    r.Description,
		Date:           r.Date,
		RequestedBy:    r.RequestedBy.String(),
		RequesterEmail: r.RequesterEmail,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.RequestedRole != "" {
		role := string(r.RequestedRole)
		resp.RequestedRole = &role
	}
	return resp
}

// MapRequestsToResponse converts a list of requests.
func MapRequestsToResponse(requests []*domain.Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, MapRequestToResponse(r))
	}
	return out
}
