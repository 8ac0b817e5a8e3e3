package services

import (
	"finbook/internal/core"
)

// Session designates at most one current user. It is created by
// AuthService.Login and passed explicitly into every LedgerService call;
// no service keeps its own current-user state.
type Session struct {
	user *core.User
}

// Active reports whether the session currently holds a user.
func (s *Session) Active() bool {
	return s != nil && s.user != nil
}

// User returns the current user, or nil when logged out.
func (s *Session) User() *core.User {
	if s == nil {
		return nil
	}
	return s.user
}

// Username returns the current user's name, or "" when logged out.
func (s *Session) Username() string {
	if !s.Active() {
		return ""
	}
	return s.user.Username
}

func (s *Session) clear() {
	if s != nil {
		s.user = nil
	}
}
