// Package dto provides data transfer objects for the lost-and-found endpoints.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/campus/internal/lostfound/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

// ReportLostItemRequest is the body of POST /api/lostfound/report.
type ReportLostItemRequest struct {
	Item        string `json:"item"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Email       string `json:"email"`
}

// Validate checks the request fields. The email is checked only when provided;
// the use case rejects a report that ends up without one.
func (r *ReportLostItemRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Item, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Location, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Email, customValidation.Email),
	)
	return customValidation.WrapValidationError(err, "item", "location")
}

// ToInput converts a validated request. reporterEmail overrides the body email when not empty.
func (r *ReportLostItemRequest) ToInput(reporterEmail string) *domain.ReportInput {
	email := r.Email
	if reporterEmail != "" {
		email = reporterEmail
	}
	return &domain.ReportInput{
		Item:          r.Item,
		Location:      r.Location,
		Description:   r.Description,
		ReporterEmail: email,
	}
}

// LostItemResponse is the public view of a report.
type LostItemResponse struct {
	ID            string    `json:"id"`
	Item          string    `json:"item"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	ReporterEmail string    `json:"reporter_email"`
	CreatedAt     time.Time `json:"created_at"`
}

// MapLostItemsToResponse converts a list of reports.
func MapLostItemsToResponse(items []*domain.LostItem) []LostItemResponse {
	out := make([]LostItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, MapLostItemToResponse(i))
	}
	return out
}

// MapLostItemToResponse converts one report.
func MapLostItemToResponse(i *domain.LostItem) LostItemResponse {
	return LostItemResponse{
		ID:            i.ID.String(),
		Item:          i.Item,
		Location:      i.Location,
		Description:   i.Description,
		Status:        i.Status,
		ReporterEmail: i.ReporterEmail,
		CreatedAt:     i.CreatedAt,
	}
}
