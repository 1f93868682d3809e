// Package dto provides data transfer objects for the resource endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/campus/internal/resource/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

// CreateResourceRequest is the body of POST /api/resources.
type CreateResourceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	FileURL     string `json:"file_url"`
	FileType    string `json:"file_type"`
	FileSize    *int64 `json:"file_size"`
}

// Validate checks the request fields.
func (r *CreateResourceRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Category, validation.Length(0, 100)),
		validation.Field(&r.FileURL, validation.Length(0, 500)),
		validation.Field(&r.FileType, validation.Length(0, 50)),
		validation.Field(&r.FileSize, validation.Min(int64(0))),
	)
	return customValidation.WrapValidationError(err, "title")
}

// ToInput converts a validated request to the use case input.
func (r *CreateResourceRequest) ToInput() *domain.CreateResourceInput {
	return &domain.CreateResourceInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		FileURL:     r.FileURL,
		FileType:    r.FileType,
		FileSize:    r.FileSize,
	}
}

// UpdateResourceRequest is the body of PUT /api/resources/:id. Omitted fields are kept.
type UpdateResourceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	FileURL     *string `json:"file_url"`
	FileType    *string `json:"file_type"`
	FileSize    *int64  `json:"file_size"`
}

// Validate checks the provided fields.
func (r *UpdateResourceRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Category, validation.Length(0, 100)),
		validation.Field(&r.FileURL, validation.Length(0, 500)),
		validation.Field(&r.FileType, validation.Length(0, 50)),
		validation.Field(&r.FileSize, validation.Min(int64(0))),
	)
	return customValidation.WrapValidationError(err, "title")
}

// ToInput converts a validated request to the use case input.
func (r *UpdateResourceRequest) ToInput() *domain.UpdateResourceInput {
	return &domain.UpdateResourceInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		FileURL:     r.FileURL,
		FileType:    r.FileType,
		FileSize:    r.FileSize,
	}
}
