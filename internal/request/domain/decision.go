package domain

import (
	"fmt"

	notificationDomain "github.com/allisson/campus/internal/notification/domain"
)

// Decision is an admin verdict on a pending request.
type Decision struct {
	Status           Status
	NotificationType notificationDomain.Type
	verb             string
}

var (
	// Approve grants a request.
	Approve = Decision{Status: StatusApproved, NotificationType: notificationDomain.TypeSuccess, verb: "approved!"}

	// Reject declines a request.
	Reject = Decision{Status: StatusRejected, NotificationType: notificationDomain.TypeError, verb: "rejected."}
)

// Title is the heading of the requester's notification.
func (d Decision) Title() string {
	if d.Status == StatusApproved {
		return "Request approved"
	}
	return "Request rejected"
}

// Message is the body of the requester's notification for a request of type t.
func (d Decision) Message(t Type) string {
	return fmt.Sprintf("Your %s request has been %s", t, d.verb)
}
