// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. Exactly one User exists per email;
// the storage layer enforces uniqueness on the lowercased address.
type User struct {
	ID            uuid.UUID // The unique identifier for the user.
	Email         string    // Login identifier, normalized to lowercase at write time.
	PasswordHash  string    // bcrypt hash of the password; never the plaintext.
	FullName      string    // Display name.
	Role          Role      // Which role-specific profile this account carries.
	EmailVerified bool      // Set once address ownership has been proven.
	IsActive      bool      // Cleared on deactivation; blocks login but keeps the record.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Sanitized returns a copy safe to serialize in API responses.
func (u *User) Sanitized() map[string]any {
	return map[string]any{
		"email":          u.Email,
		"full_name":      u.FullName,
		"role":           u.Role,
		"email_verified": u.EmailVerified,
	}
}
