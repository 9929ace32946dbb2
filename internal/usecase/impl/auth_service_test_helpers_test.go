package impl

import (
	"io"
	"log/slog"
	"time"

	"healthvault/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			AccessTokenTTL:    15 * time.Minute,
			RefreshTokenTTL:   7 * 24 * time.Hour,
			OTPTTL:            5 * time.Minute,
			VerifyTTL:         24 * time.Hour,
			ResetTTL:          time.Hour,
			MaxFailedLogins:   5,
			FailedLoginWindow: 15 * time.Minute,
			RevokedRetention:  30 * 24 * time.Hour,
		},
	}
}
