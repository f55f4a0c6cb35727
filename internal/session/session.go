package session

import (
	"strings"
	"time"
)

// Role is assigned once, at profile creation, and never changed afterwards.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the authenticated identity as the rest of the application sees it:
// the identity-provider fields merged with the profile document.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Identity is the raw authenticated identity emitted by the identity
// provider, before the profile document has been resolved.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// DisplayName returns the identity's display name, falling back to the
// local part of the email address when none was supplied.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if at := strings.Index(i.Email, "@"); at > 0 {
		return i.Email[:at]
	}
	return "User"
}

// NewUser builds the profile document created for a first-time identity.
func NewUser(identity Identity, role Role, now time.Time) *User {
	return &User{
		ID:        identity.ID,
		Name:      identity.DisplayName(),
		Email:     identity.Email,
		Role:      role,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}
