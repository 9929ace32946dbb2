// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"healthvault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a session (refresh token record) is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository manages persisted refresh token records. This supports
// multi-device login, remote logout and refresh token rotation.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the SHA-256 hash of its raw
	// refresh token. The record is returned regardless of its revoked or
	// expiry state; validity is the caller's decision.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindByID retrieves a session record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindValidByUserID retrieves all non-revoked, non-expired sessions for a
	// user, most recently used first.
	FindValidByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// Revoke marks a single session revoked. Revocation is terminal.
	Revoke(ctx context.Context, id uuid.UUID) error

	// RevokeAllByUserID marks every session of a user revoked. Used by
	// password reset to force re-login everywhere.
	RevokeAllByUserID(ctx context.Context, userID uuid.UUID) error

	// Touch updates a session's last-used timestamp.
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error

	// DeleteStale removes rows that are expired, or revoked and older than
	// the retention window. Best-effort housekeeping: validity is computed
	// live from the flags, never from row presence.
	DeleteStale(ctx context.Context, now time.Time, revokedRetention time.Duration) (int64, error)
}
