package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
)

// Role identifies what an authenticated actor may reach
type Role string

// Known roles. Anything else is treated as a generic user.
const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleUser    Role = "user"
)

// Landing pages
const (
	LoginPath            = "/login"
	DashboardPath        = "/dashboard"
	StudentDashboardPath = "/student-dashboard"
	LogsPath             = "/logs"
)

// Session store keys
const (
	KeyCurrentUser       = "currentUser"
	KeyToken             = "token"
	KeyPreferredLanguage = "preferredLanguage"
	KeyAppUsers          = "appUsers"
	KeyTransactionLogs   = "transactionLogs"
)

// RoleHome returns the landing page for a role.
// This is the only place the role to path table lives.
func RoleHome(role Role) string {
	switch role {
	case RoleAdmin:
		return DashboardPath
	case RoleStudent:
		return StudentDashboardPath
	default:
		return LogsPath
	}
}

// ParseRole normalizes a role name; unknown values are kept as-is
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// In reports whether the role is one of roles
func (r Role) In(roles []Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// Identity is who the actor is, without any authentication verdict
type Identity struct {
	ID       uint64 `json:"id"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Session is the persisted currentUser record
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Role            Role   `json:"role"`
	ID              uint64 `json:"id,omitempty"`
	Name            string `json:"name,omitempty"`
	Username        string `json:"username,omitempty"`
}

// NewSession builds an authenticated session for an identity
func NewSession(identity Identity) *Session {
	return &Session{
		IsAuthenticated: true,
		Role:            identity.Role,
		ID:              identity.ID,
		Name:            identity.Name,
		Username:        identity.Username,
	}
}

// Identity returns the identity part of the session
func (s *Session) Identity() Identity {
	return Identity{ID: s.ID, Role: s.Role, Name: s.Name, Username: s.Username}
}

// Matches reports whether the cached session describes exactly this identity
func (s *Session) Matches(identity Identity) bool {
	return s.Identity() == identity
}

// DecodeSession parses a persisted currentUser record.
// Any malformed payload is reported as ErrSessionInvalid.
func DecodeSession(data []byte) (*Session, error) {
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSessionInvalid, err)
	}
	return &session, nil
}

// Encode serializes the session for storage
func (s *Session) Encode() ([]byte, error) {
	return json.Marshal(s)
}
