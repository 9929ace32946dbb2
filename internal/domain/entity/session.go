// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one logged-in device: a persisted refresh token record.
// The raw refresh token is never stored; a SHA-256 hash of it is the lookup key.
type Session struct {
	ID         uuid.UUID // The unique ID for this session record.
	UserID     uuid.UUID // Links this session to the User it belongs to.
	TokenHash  string    // SHA-256 hash of the raw refresh token.
	ExpiresAt  time.Time // Mirrors the refresh token's exp claim.
	Revoked    bool      // Terminal once set; replay of the token must fail.
	DeviceInfo string    // Human-readable device descriptor ("Desktop - Linux - Chrome").
	LastUsedAt time.Time // Updated on every successful validity check.
	CreatedAt  time.Time
}

// IsValid reports whether the session can still be exchanged:
// not revoked and not past its expiry.
func (s *Session) IsValid(now time.Time) bool {
	return !s.Revoked && s.ExpiresAt.After(now)
}

// SessionInfo is the API-facing view of a session for the
// session-management endpoints.
type SessionInfo struct {
	ID         uuid.UUID `json:"id"`
	DeviceInfo string    `json:"device_info"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
