// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"healthvault/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error)
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
	GetActivity(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AuditEntry, error)
	CleanupExpired(ctx context.Context) (sessions int64, codes int64, err error)
}
