package dto

import (
	"time"

	"github.com/allisson/campus/internal/resource/domain"
)

// ResourceResponse is the public view of a resource.
type ResourceResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	FileURL       string    `json:"file_url"`
	FileType      string    `json:"file_type"`
	FileSize      *int64    `json:"file_size"`
	DownloadCount int       `json:"download_count"`
	UploaderID    string    `json:"uploader_id"`
	UploaderName  string    `json:"uploader_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MapResourceToResponse converts a domain resource.
func MapResourceToResponse(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:            r.ID.String(),
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		FileURL:       r.FileURL,
		FileType:      r.FileType,
		FileSize:      r.FileSize,
		DownloadCount: r.DownloadCount,
		UploaderID:    r.UploaderID.String(),
		UploaderName:  r.UploaderName,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// MapResourcesToResponse converts a list of resources.
func MapResourcesToResponse(resources []*domain.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, MapResourceToResponse(r))
	}
	return out
}
