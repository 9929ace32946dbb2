// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"healthvault/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditRepository is the append-only security event ledger. Entries are
// never mutated or deleted.
type AuditRepository interface {
	// Create appends a new audit entry.
	Create(ctx context.Context, entry *entity.AuditEntry) error

	// ListByUserID returns the most recent entries for a user, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AuditEntry, error)

	// CountFailedLogins counts failed_login entries for an email within the
	// trailing window. Drives the login throttle.
	CountFailedLogins(ctx context.Context, email string, since time.Time) (int, error)
}
