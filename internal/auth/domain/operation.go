package domain

// Resource names a kind of record subject to authorization.
type Resource string

const (
	ResourceEvent             Resource = "event"
	ResourceEventRegistration Resource = "event_registration"
	ResourceClub              Resource = "club"
	ResourceClubMembership    Resource = "club_membership"
	ResourceAnnouncement      Resource = "announcement"
	ResourceLibraryItem       Resource = "resource"
	ResourceLostFound         Resource = "lost_found"
	ResourceFeedback          Resource = "feedback"
	ResourceNotification      Resource = "notification"
	ResourceComment           Resource = "comment"
	ResourceUser              Resource = "user"
	ResourceRequest           Resource = "request"
)

// Action is what an operation does to a resource. The *_own actions are
// self-scoped: they apply only to records owned by the principal.
type Action string

const (
	ActionRead      Action = "read"
	ActionReadOwn   Action = "read_own"
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionUpdateOwn Action = "update_own"
	ActionDelete    Action = "delete"
	ActionDeleteOwn Action = "delete_own"
)

// SelfScoped reports whether the action requires ownership of the target record.
func (a Action) SelfScoped() bool {
	switch a {
	case ActionReadOwn, ActionUpdateOwn, ActionDeleteOwn:
		return true
	default:
		return false
	}
}

// Operation is a (resource, action) pair evaluated by the policy.
type Operation struct {
	Resource Resource
	Action   Action
}

// Op is shorthand for Operation{Resource: r, Action: a}.
func Op(r Resource, a Action) Operation {
	return Operation{Resource: r, Action: a}
}

func (o Operation) String() string {
	return string(o.Resource) + ":" + string(o.Action)
}
