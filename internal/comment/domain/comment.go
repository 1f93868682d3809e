// Package domain defines comments attached to events, clubs and announcements.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	"github.com/allisson/campus/internal/errors"
)

// ItemType names the kind of record a comment is attached to.
type ItemType string

const (
	ItemEvent        ItemType = "event"
	ItemClub         ItemType = "club"
	ItemAnnouncement ItemType = "announcement"
)

// ItemTypes lists every commentable item type.
var ItemTypes = []ItemType{ItemEvent, ItemClub, ItemAnnouncement}

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemEvent, ItemClub, ItemAnnouncement:
		return true
	default:
		return false
	}
}

// Comment is a remark on an item. The author fields are copied from the
// session at write time.
type Comment struct {
	ID        uuid.UUID
	ItemType  ItemType
	ItemID    uuid.UUID
	UserID    uuid.UUID
	UserEmail string
	UserName  string
	UserRole  authDomain.Role
	Body      string
	CreatedAt time.Time
}

// CreateCommentInput holds a new comment.
type CreateCommentInput struct {
	ItemType ItemType
	ItemID   uuid.UUID
	Body     string
}

var (
	// ErrCommentNotFound indicates the comment does not exist.
	ErrCommentNotFound = errors.WithMessage(errors.ErrNotFound, "comment not found")

	// ErrInvalidItemType indicates an item type outside ItemTypes.
	ErrInvalidItemType = errors.WithMessage(errors.ErrInvalidInput, "invalid item_type")
)
