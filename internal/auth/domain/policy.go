package domain

import (
	"slices"

	"github.com/google/uuid"
)

// DenyReason tells the HTTP boundary which status to use for a denial.
type DenyReason string

const (
	// ReasonUnauthenticated means no valid credential was presented (401).
	ReasonUnauthenticated DenyReason = "unauthenticated"

	// ReasonForbidden means the principal lacks the role or ownership required (403).
	ReasonForbidden DenyReason = "forbidden"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  DenyReason
	Message string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason DenyReason, message string) Decision {
	return Decision{Reason: reason, Message: message}
}

// rule is one cell of the role matrix. A public rule admits anonymous callers.
// Otherwise roles lists who may perform the operation; anyAuthenticated admits
// every role.
type rule struct {
	public           bool
	anyAuthenticated bool
	roles            []Role
	message          string
}

var (
	anyone        = rule{public: true}
	authenticated = rule{anyAuthenticated: true}
	staff         = rule{roles: []Role{RoleAdmin, RoleFaculty}}
	adminOnly     = rule{roles: []Role{RoleAdmin}}
	userAdmin     = rule{roles: []Role{RoleAdmin}, message: "admin access required"}
)

// contentRules covers events, clubs, announcements and resources.
var contentRules = map[Action]rule{
	ActionRead:   anyone,
	ActionCreate: staff,
	ActionUpdate: staff,
	ActionDelete: adminOnly,
}

// roleMatrix is built once at package initialisation and never written again.
var roleMatrix = buildRoleMatrix()

func buildRoleMatrix() map[Operation]rule {
	m := map[Operation]rule{
		Op(ResourceLostFound, ActionRead):   anyone,
		Op(ResourceLostFound, ActionCreate): anyone,

		Op(ResourceClubMembership, ActionRead):      staff,
		Op(ResourceClubMembership, ActionReadOwn):   authenticated,
		Op(ResourceClubMembership, ActionCreate):    authenticated,
		Op(ResourceClubMembership, ActionDeleteOwn): authenticated,

		Op(ResourceEventRegistration, ActionRead):    staff,
		Op(ResourceEventRegistration, ActionReadOwn): authenticated,
		Op(ResourceEventRegistration, ActionCreate):  authenticated,

		Op(ResourceFeedback, ActionRead):   adminOnly,
		Op(ResourceFeedback, ActionCreate): anyone,

		Op(ResourceNotification, ActionReadOwn):   authenticated,
		Op(ResourceNotification, ActionCreate):    staff,
		Op(ResourceNotification, ActionUpdateOwn): authenticated,
		Op(ResourceNotification, ActionDeleteOwn): authenticated,

		Op(ResourceComment, ActionRead):   anyone,
		Op(ResourceComment, ActionCreate): authenticated,
		Op(ResourceComment, ActionDelete): adminOnly,

		Op(ResourceUser, ActionRead):      userAdmin,
		Op(ResourceUser, ActionCreate):    userAdmin,
		Op(ResourceUser, ActionUpdate):    userAdmin,
		Op(ResourceUser, ActionUpdateOwn): authenticated,

		Op(ResourceRequest, ActionRead):   adminOnly,
		Op(ResourceRequest, ActionCreate): authenticated,
		Op(ResourceRequest, ActionUpdate): adminOnly,
	}

	for _, res := range []Resource{ResourceEvent, ResourceClub, ResourceAnnouncement, ResourceLibraryItem} {
		for action, r := range contentRules {
			m[Op(res, action)] = r
		}
	}

	return m
}

// Authorize decides whether principal (nil for anonymous) may perform op. It is
// total: operations missing from the matrix are forbidden.
func Authorize(principal *Principal, op Operation) Decision {
	r, ok := roleMatrix[op]
	if !ok {
		if principal == nil {
			return deny(ReasonUnauthenticated, "authentication required")
		}
		return deny(ReasonForbidden, "forbidden")
	}

	if r.public {
		return allow()
	}
	if principal == nil {
		return deny(ReasonUnauthenticated, "authentication required")
	}
	if r.anyAuthenticated || slices.Contains(r.roles, principal.role) {
		return allow()
	}

	message := r.message
	if message == "" {
		message = "forbidden"
	}
	return deny(ReasonForbidden, message)
}

// AuthorizeTarget is Authorize plus the ownership check for self-scoped actions.
// ownerID is the user the target record belongs to. No role bypasses ownership.
func AuthorizeTarget(principal *Principal, op Operation, ownerID uuid.UUID) Decision {
	decision := Authorize(principal, op)
	if !decision.Allowed || !op.Action.SelfScoped() {
		return decision
	}
	if principal.id != ownerID {
		return deny(ReasonForbidden, "forbidden")
	}
	return decision
}

// Operations returns every operation present in the matrix.
func Operations() []Operation {
	ops := make([]Operation, 0, len(roleMatrix))
	for op := range roleMatrix {
		ops = append(ops, op)
	}
	return ops
}
