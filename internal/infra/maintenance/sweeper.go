// Package maintenance runs the background cleanup of stale auth state.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"healthvault/config"
	"healthvault/internal/usecase"

	"go.uber.org/fx"
)

// Sweeper periodically deletes expired one-time codes and stale sessions.
type Sweeper struct {
	sessions usecase.SessionUsecase
	interval time.Duration
	logger   *slog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Sessions usecase.SessionUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// New creates the sweeper and ties it to the application lifecycle.
func New(params Params) *Sweeper {
	s := &Sweeper{
		sessions: params.Sessions,
		interval: params.Config.Auth.SweepInterval,
		logger:   params.Logger,
		done:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			s.cancel = cancel
			go s.run(ctx)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			s.cancel()
			select {
			case <-s.done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})

	return s
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// One pass at startup to clear anything accumulated while down.
	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	sessions, codes, err := s.sessions.CleanupExpired(ctx)
	if err != nil {
		s.logger.Error("Sweep failed", slog.Any("error", err))

		return
	}

	if sessions > 0 || codes > 0 {
		s.logger.Info("Sweep completed",
			slog.Int64("sessionsDeleted", sessions),
			slog.Int64("codesDeleted", codes))
	}
}
