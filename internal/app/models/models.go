// Package models defines the domain entities the gateway passes between the
// browser surface and the upstream career-fair API.
package models

// Role determines available routes and permitted actions.
type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// ParseRole returns the Role for s and whether it is one of the known roles.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleCompany, RoleFaculty, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Credentials are transient login data, never persisted beyond the login call.
type Credentials struct {
	Email    string
	Password string
	UserType Role
}

// Session is the in-memory representation of the currently authenticated user
// and role, plus the profile fields merged in after enrichment.
type Session struct {
	SID             string  `json:"-"`
	Authenticated   bool    `json:"authenticated"`
	UserID          int64   `json:"userId,omitempty"`
	UserType        Role    `json:"userType,omitempty"`
	Name            string  `json:"name,omitempty"`
	Email           string  `json:"email,omitempty"`
	RegisteredFairs []int64 `json:"registeredFairs,omitempty"`
	LastFairID      int64   `json:"lastCreatedCareerFair,omitempty"`
}
