// Package domain defines per-user notifications.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/errors"
)

// Type classifies a notification for display.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Types lists every notification type.
var Types = []Type{TypeInfo, TypeSuccess, TypeWarning, TypeError}

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	default:
		return false
	}
}

// Notification is a message delivered to one user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      Type
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
	ReadAt    *time.Time
}

// New builds an unread notification for userID created at now.
func New(userID uuid.UUID, t Type, title, message string, now time.Time) *Notification {
	return &Notification{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Type:      t,
		Title:     title,
		Message:   message,
		CreatedAt: now,
	}
}

// SendInput describes a notification fan-out. An empty UserIDs broadcasts to every user.
type SendInput struct {
	UserIDs []uuid.UUID
	Type    Type
	Title   string
	Message string
}

var (
	// ErrNotificationNotFound indicates the notification does not exist.
	ErrNotificationNotFound = errors.WithMessage(errors.ErrNotFound, "notification not found")

	// ErrInvalidType indicates a type outside Types.
	ErrInvalidType = errors.WithMessage(errors.ErrInvalidInput, "invalid notification type")
)
