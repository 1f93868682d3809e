// Package domain defines feedback submitted through the portal.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is applied when feedback is sent without a category.
const DefaultCategory = "General"

// Feedback is a message to the portal administrators. UserID is unset for
// anonymous senders and Email may be empty.
type Feedback struct {
	ID        uuid.UUID
	UserID    uuid.NullUUID
	Email     string
	Category  string
	Message   string
	CreatedAt time.Time
}

// SubmitFeedbackInput holds new feedback. The sender fields are resolved by the caller.
type SubmitFeedbackInput struct {
	UserID   uuid.NullUUID
	Email    string
	Category string
	Message  string
}
