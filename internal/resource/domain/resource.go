// Package domain defines shared library resources such as notes, papers and slides.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/errors"
)

// DefaultCategory is applied when a resource is created without a category.
const DefaultCategory = "general"

// Resource is a downloadable file entry. UploaderName is a read join.
type Resource struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Category      string
	FileURL       string
	FileType      string
	FileSize      *int64
	DownloadCount int
	UploaderID    uuid.UUID
	UploaderName  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ListFilter narrows a resource listing. Empty fields match everything.
type ListFilter struct {
	Category string

	// Query is matched case-insensitively against title and description.
	Query string
}

// SearchPattern returns the LIKE pattern for Query with wildcards escaped, or
// "" when there is no query.
func (f ListFilter) SearchPattern() string {
	if f.Query == "" {
		return ""
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(f.Query))
	return "%" + escaped + "%"
}

// CreateResourceInput holds the fields of a new resource.
type CreateResourceInput struct {
	Title       string
	Description string
	Category    string
	FileURL     string
	FileType    string
	FileSize    *int64
}

// UpdateResourceInput holds a partial update. Nil fields are left unchanged.
type UpdateResourceInput struct {
	Title       *string
	Description *string
	Category    *string
	FileURL     *string
	FileType    *string
	FileSize    *int64
}

// Apply copies the provided fields onto r.
func (in *UpdateResourceInput) Apply(r *Resource) {
	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Category != nil {
		r.Category = *in.Category
	}
	if in.FileURL != nil {
		r.FileURL = *in.FileURL
	}
	if in.FileType != nil {
		r.FileType = *in.FileType
	}
	if in.FileSize != nil {
		r.FileSize = in.FileSize
	}
}

// ErrResourceNotFound indicates the resource does not exist.
var ErrResourceNotFound = errors.WithMessage(errors.ErrNotFound, "resource not found")
