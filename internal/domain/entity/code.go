// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CodePurpose distinguishes the three one-time code variants.
type CodePurpose string

const (
	// PurposeOTP is a pre-registration email ownership proof (6-digit code).
	PurposeOTP CodePurpose = "otp"
	// PurposeEmailVerify is a post-registration email verification token.
	PurposeEmailVerify CodePurpose = "email_verify"
	// PurposePasswordReset is a password reset token.
	PurposePasswordReset CodePurpose = "password_reset"
)

// OneTimeCode is a short-lived, single-use secret. It is deleted the moment
// it is consumed; an absent row is indistinguishable from an expired one.
type OneTimeCode struct {
	ID        uuid.UUID
	UserID    uuid.UUID   // Zero for OTP codes issued before any account exists.
	Email     string      // Subject address, lowercase.
	Code      string      // The secret itself: 6 digits for OTP, uuid for tokens.
	Purpose   CodePurpose // Which flow this code belongs to.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the code is past its time-to-live.
func (c *OneTimeCode) IsExpired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
