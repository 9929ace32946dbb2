// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"healthvault/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestMeta carries the client context attached to security-relevant
// operations for auditing.
type RequestMeta struct {
	IPAddress  string
	UserAgent  string
	DeviceInfo string
}

// --- Input DTOs ---

// SendOTPInput defines the data required to request a login/registration code.
type SendOTPInput struct {
	Email string
}

// VerifyOTPInput defines the data required to register through the OTP flow.
// The code proves address ownership, so the account is created verified.
type VerifyOTPInput struct {
	Email    string
	Code     string
	Password string
	FullName string
	Role     string
	Meta     RequestMeta
}

// RegisterInput defines the data required to register a new user directly.
// Accounts created this way start unverified and confirm by email.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Meta     RequestMeta
}

// VerifyEmailInput defines the data required to confirm email ownership.
type VerifyEmailInput struct {
	Code string
}

// ResendVerificationInput defines the data required to reissue a
// verification code.
type ResendVerificationInput struct {
	Email string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	Meta     RequestMeta
}

// RefreshInput defines the data required to rotate a refresh token.
type RefreshInput struct {
	RefreshToken string
	Meta         RequestMeta
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string
	Meta         RequestMeta
}

// ForgotPasswordInput defines the data required to start a password reset.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput defines the data required to complete a password reset.
type ResetPasswordInput struct {
	Code        string
	NewPassword string
	Meta        RequestMeta
}

// --- Output DTOs ---

// VerifyOTPOutput returns the created user and its first session's tokens.
type VerifyOTPOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RegisterOutput returns the newly created user's basic information.
// EmailSent reports whether the verification mail went out; delivery failure
// does not undo the registration.
type RegisterOutput struct {
	User      *entity.User
	EmailSent bool
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	SendOTP(ctx context.Context, input SendOTPInput) error
	VerifyOTP(ctx context.Context, input VerifyOTPInput) (*VerifyOTPOutput, error)
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	VerifyEmail(ctx context.Context, input VerifyEmailInput) error
	ResendVerification(ctx context.Context, input ResendVerificationInput) error
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context, input LogoutInput) error
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
