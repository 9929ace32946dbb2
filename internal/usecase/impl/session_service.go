package impl

import (
	"context"
	"log/slog"
	"time"

	"healthvault/config"
	"healthvault/internal/domain/entity"
	domainerrors "healthvault/internal/domain/errors"
	"healthvault/internal/domain/repository"
	"healthvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager        repository.TransactionManager
	revokedRetention time.Duration
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:        params.TxManager,
		revokedRetention: params.Config.Auth.RevokedRetention,
		logger:           params.Logger,
	}
}

// GetActiveSessions retrieves all active sessions for a user, most recently
// used first.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error) {
	var sessions []*entity.SessionInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		active, err := repoFactory.SessionRepo().FindValidByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find sessions")
		}

		for _, session := range active {
			sessions = append(sessions, &entity.SessionInfo{
				ID:         session.ID,
				DeviceInfo: session.DeviceInfo,
				CreatedAt:  session.CreatedAt,
				LastUsedAt: session.LastUsedAt,
				ExpiresAt:  session.ExpiresAt,
			})
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to get active sessions", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return sessions, nil
}

// RevokeSession revokes one of the user's own sessions. Sessions owned by
// other users are reported as not found rather than forbidden.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		session, err := sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		if session.UserID != userID {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "session belongs to another user")
		}

		if session.Revoked {
			return nil
		}

		return sessionRepo.Revoke(ctx, session.ID)
	})
	if err != nil {
		srv.logger.Warn("Failed to revoke session", slog.Any("userID", userID), slog.Any("sessionID", sessionID), slog.Any("error", err))

		return err
	}

	srv.logger.Info("Session revoked", slog.Any("userID", userID), slog.Any("sessionID", sessionID))

	return nil
}

// GetActivity returns the user's recent security events, newest first.
func (srv *sessionService) GetActivity(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	var entries []*entity.AuditEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		entries, err = repoFactory.AuditRepo().ListByUserID(ctx, userID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list audit entries")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to get activity", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return entries, nil
}

// CleanupExpired deletes expired one-time codes and stale sessions. Revoked
// sessions are retained for a configured window before deletion so recent
// revocations stay visible to investigations.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, int64, error) {
	var sessions, codes int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := time.Now()

		var err error
		sessions, err = repoFactory.SessionRepo().DeleteStale(ctx, now, srv.revokedRetention)
		if err != nil {
			return errors.Wrap(err, "failed to delete stale sessions")
		}

		codes, err = repoFactory.CodeRepo().DeleteExpired(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to delete expired codes")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Cleanup failed", slog.Any("error", err))

		return 0, 0, err
	}

	return sessions, codes, nil
}
