package dto

import (
	"time"

	"github.com/allisson/campus/internal/announcement/domain"
)

// AnnouncementResponse is the public view of an announcement.
type AnnouncementResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Priority   string    `json:"priority"`
	Category   string    `json:"category"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MapAnnouncementToResponse converts a domain announcement.
func MapAnnouncementToResponse(a *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:         a.ID.String(),
		Title:      a.Title,
		Content:    a.Content,
		Priority:   string(a.Priority),
		Category:   a.Category,
		AuthorID:   a.AuthorID.String(),
		AuthorName: a.AuthorName,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// MapAnnouncementsToResponse converts a list of announcements.
func MapAnnouncementsToResponse(announcements []*domain.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, MapAnnouncementToResponse(a))
	}
	return out
}
