// Package dto provides data transfer objects for the comment endpoints.
package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/campus/internal/comment/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

var itemTypeRule = customValidation.OneOf(
	string(domain.ItemEvent),
	string(domain.ItemClub),
	string(domain.ItemAnnouncement),
)

// CreateCommentRequest is the body of POST /api/comments. Author fields in the
// body are ignored.
type CreateCommentRequest struct {
	ItemType string `json:"item_type"`
	ItemID   string `json:"item_id"`
	Comment  string `json:"comment"`
}

// Validate checks the request fields.
func (r *CreateCommentRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.ItemType, validation.Required, itemTypeRule),
		validation.Field(&r.ItemID, validation.Required, customValidation.UUID),
		validation.Field(&r.Comment, validation.Required, customValidation.NotBlank, validation.Length(1, 2000)),
	)
	return customValidation.WrapValidationError(err, "item_type", "item_id", "comment")
}

// ToInput converts a validated request to the use case input.
func (r *CreateCommentRequest) ToInput() *domain.CreateCommentInput {
	return &domain.CreateCommentInput{
		ItemType: domain.ItemType(r.ItemType),
		ItemID:   uuid.MustParse(r.ItemID),
		Body:     r.Comment,
	}
}

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	ItemType  string    `json:"item_type"`
	ItemID    string    `json:"item_id"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	UserName  string    `json:"user_name"`
	UserRole  string    `json:"user_role"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// MapCommentToResponse converts a domain comment.
func MapCommentToResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		ItemType:  string(c.ItemType),
		ItemID:    c.ItemID.String(),
		UserID:    c.UserID.String(),
		UserEmail: c.UserEmail,
		UserName:  c.UserName,
		UserRole:  string(c.UserRole),
		Comment:   c.Body,
		CreatedAt: c.CreatedAt,
	}
}

// MapCommentsToResponse converts a list of comments.
func MapCommentsToResponse(comments []*domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, MapCommentToResponse(c))
	}
	return out
}
