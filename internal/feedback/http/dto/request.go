// Package dto provides data transfer objects for the feedback endpoints.
package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/feedback/domain"
	customValidation "github.com/allisson/campus/internal/validation"
)

// SubmitFeedbackRequest is the body of POST /api/feedback.
type SubmitFeedbackRequest struct {
	Email    string `json:"email"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Validate checks the request fields.
func (r *SubmitFeedbackRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Message, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Email, customValidation.Email),
		validation.Field(&r.Category, validation.Length(0, 100)),
	)
	return customValidation.WrapValidationError(err, "message")
}

// ToInput converts a validated request. A signed-in sender is recorded by id and
// session email; otherwise the body email is kept.
func (r *SubmitFeedbackRequest) ToInput(sender *authDomain.Principal) *domain.SubmitFeedbackInput {
	input := &domain.SubmitFeedbackInput{
		Email:    r.Email,
		Category: r.Category,
		Message:  r.Message,
	}
	if sender != nil {
		input.UserID = uuid.NullUUID{UUID: sender.ID(), Valid: true}
		input.Email = sender.Email()
	}
	return input
}

// FeedbackResponse is the admin view of feedback.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// MapFeedbackToResponse converts one feedback entry.
func MapFeedbackToResponse(f *domain.Feedback) FeedbackResponse {
	resp := FeedbackResponse{
		ID:        f.ID.String(),
		Email:     f.Email,
		Category:  f.Category,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
	if f.UserID.Valid {
		id := f.UserID.UUID.String()
		resp.UserID = &id
	}
	return resp
}

// MapFeedbackListToResponse converts a list of feedback entries.
func MapFeedbackListToResponse(all []*domain.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(all))
	for _, f := range all {
		out = append(out, MapFeedbackToResponse(f))
	}
	return out
}
