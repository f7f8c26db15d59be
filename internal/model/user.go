package model

import (
	"net/url"
	"strings"
)

// Role controls what a user may do in the workspace
const (
	RoleOwner  = "Owner"
	RoleMember = "Member"
	RoleGuest  = "Guest"
)

// User represents a workspace member
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Theme    string `json:"theme,omitempty"`
}

// FallbackPassword is assigned when a new member is created without one
const FallbackPassword = "123"

// DefaultAdmin returns the bootstrap Owner. The user collection is re-seeded
// with this account whenever it would otherwise be empty.
func DefaultAdmin() User {
	return User{
		ID:       "u1",
		Name:     "Admin User",
		Username: "admin",
		Password: "123",
		Avatar:   AvatarURL("Admin"),
		Role:     RoleOwner,
		Email:    "admin@kerja.app",
	}
}

// AvatarURL builds a generated placeholder avatar keyed by display name
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=10b981&color=fff&size=128"
}

// DefaultUsername derives a username from a display name: lowercased with
// whitespace stripped ("Jane Doe" -> "janedoe").
func DefaultUsername(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
