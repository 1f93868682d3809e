// Package domain defines the campus identity model and the role matrix that
// gates every operation. Principals are derived from verified session tokens and
// authorization is a pure lookup over (principal, operation).
package domain

import "time"

// SessionLifetime is the fixed validity window of a session token.
const SessionLifetime = 8 * time.Hour

// Role is one of the closed set of campus roles.
type Role string

const (
	// RoleStudent is the default role of self-service users.
	RoleStudent Role = "student"

	// RoleFaculty can publish campus content and see rosters.
	RoleFaculty Role = "faculty"

	// RoleAdmin manages users, requests and destructive operations.
	RoleAdmin Role = "admin"
)

// Roles lists every valid role.
var Roles = []Role{RoleStudent, RoleFaculty, RoleAdmin}

// ParseRole converts s into a Role, rejecting anything outside the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// DashboardFor maps a role to the landing page returned after login.
func DashboardFor(r Role) string {
	switch r {
	case RoleStudent:
		return "dashboard-student.html"
	case RoleFaculty:
		return "dashboard-faculty.html"
	case RoleAdmin:
		return "dashboard-admin.html"
	default:
		return "index.html"
	}
}
