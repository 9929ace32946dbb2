// Package mail provides the SMTP implementation of the Mailer service.
package mail

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"healthvault/config"
	"healthvault/internal/domain/service"
)

// gomailMailer sends transactional mail through an SMTP relay.
type gomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailMailer is the constructor for gomailMailer.
func NewGomailMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	return &gomailMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}, nil
}

// SendOTP delivers a short-lived login/registration code.
func (m *gomailMailer) SendOTP(ctx context.Context, to string, code string) error {
	body := fmt.Sprintf("Your verification code is %s. It expires in a few minutes.", code)

	return m.send(ctx, to, "Your verification code", body)
}

// SendVerification delivers an email-ownership verification code.
func (m *gomailMailer) SendVerification(ctx context.Context, to string, code string) error {
	body := fmt.Sprintf("Confirm your email address with this code: %s", code)

	return m.send(ctx, to, "Verify your email address", body)
}

// SendPasswordReset delivers a password reset code.
func (m *gomailMailer) SendPasswordReset(ctx context.Context, to string, code string) error {
	body := fmt.Sprintf("Use this code to reset your password: %s\nIf you did not request a reset, you can ignore this message.", code)

	return m.send(ctx, to, "Reset your password", body)
}

// SendWelcome delivers the post-verification welcome message.
func (m *gomailMailer) SendWelcome(ctx context.Context, to string, fullName string) error {
	body := fmt.Sprintf("Hi %s,\n\nYour email has been verified and your account is ready to use.", fullName)

	return m.send(ctx, to, "Welcome", body)
}

func (m *gomailMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send cancelled")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
