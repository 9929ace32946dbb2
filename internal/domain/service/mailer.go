package service

import "context"

// Mailer defines the interface for outbound transactional email.
// Implementations must not block the caller on slow SMTP peers beyond the
// context deadline.
type Mailer interface {
	// SendOTP delivers a short-lived login/registration code.
	SendOTP(ctx context.Context, to string, code string) error

	// SendVerification delivers an email-ownership verification code.
	SendVerification(ctx context.Context, to string, code string) error

	// SendPasswordReset delivers a password reset code.
	SendPasswordReset(ctx context.Context, to string, code string) error

	// SendWelcome delivers the post-verification welcome message.
	SendWelcome(ctx context.Context, to string, fullName string) error
}
