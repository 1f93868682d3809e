package domain

import "time"

// Session is a freshly issued login session.
type Session struct {
	Principal *Principal
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// Redirect returns the dashboard the client should open after login.
func (s *Session) Redirect() string {
	return DashboardFor(s.Principal.Role())
}
