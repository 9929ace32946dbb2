package mail

import (
	"context"
	"log/slog"

	"healthvault/internal/domain/service"
)

// logMailer writes outbound mail to the log instead of an SMTP relay. It is
// used in local development where no relay is configured.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer is the constructor for logMailer.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendOTP(_ context.Context, to string, code string) error {
	m.logger.Info("mail: OTP", slog.String("to", to), slog.String("code", code))

	return nil
}

func (m *logMailer) SendVerification(_ context.Context, to string, code string) error {
	m.logger.Info("mail: verification", slog.String("to", to), slog.String("code", code))

	return nil
}

func (m *logMailer) SendPasswordReset(_ context.Context, to string, code string) error {
	m.logger.Info("mail: password reset", slog.String("to", to), slog.String("code", code))

	return nil
}

func (m *logMailer) SendWelcome(_ context.Context, to string, fullName string) error {
	m.logger.Info("mail: welcome", slog.String("to", to), slog.String("fullName", fullName))

	return nil
}
