package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleGuide   Role = "guide"
	RoleTourist Role = "tourist"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGuide, RoleTourist:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	if r.Valid() {
		return r, true
	}
	return "", false
}

// LandingPath returns the post-login destination for the role when no
// explicit redirect was requested.
func (r Role) LandingPath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleGuide:
		return "/dashboard"
	default:
		return "/"
	}
}

// Identity represents the authenticated principal as known to the
// credential layer. Adapters map provider- or database-specific records
// into this shape.
type Identity struct {
	UserID    string // stable user identifier
	Name      string
	Email     string
	ExpiresAt time.Time // absolute session expiry granted at authentication
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin returns true if the session role is admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// IsGuide returns true if the session role is guide.
func (s Session) IsGuide() bool { return s.Role == RoleGuide }

// NormalizeEmail canonicalizes an email address for comparisons and
// storage keys. All role and rate-limit checks compare normalized
// emails, never raw input.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
