// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"healthvault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCodeNotFound is returned when a one-time code is absent. Consumed,
// expired and never-issued codes are indistinguishable to callers.
var ErrCodeNotFound = errors.New("one-time code not found")

// CodeRepository manages short-lived, single-use codes (OTP, email
// verification tokens, password reset tokens).
type CodeRepository interface {
	// Create persists a new code.
	Create(ctx context.Context, code *entity.OneTimeCode) error

	// FindByEmailAndCode retrieves an unexpired code by exact email+code
	// match for the given purpose. Used by the OTP flow.
	FindByEmailAndCode(ctx context.Context, purpose entity.CodePurpose, email, code string) (*entity.OneTimeCode, error)

	// FindByCode retrieves an unexpired code by its value for the given
	// purpose. Used by the verification and reset token flows.
	FindByCode(ctx context.Context, purpose entity.CodePurpose, code string) (*entity.OneTimeCode, error)

	// Consume deletes a code so it can never be replayed.
	Consume(ctx context.Context, id uuid.UUID) error

	// DeleteByEmail removes all outstanding codes of a purpose for an email.
	// Every issuance invalidates prior codes for the same subject first.
	DeleteByEmail(ctx context.Context, purpose entity.CodePurpose, email string) error

	// DeleteByUserID removes all outstanding codes of a purpose for a user.
	DeleteByUserID(ctx context.Context, purpose entity.CodePurpose, userID uuid.UUID) error

	// DeleteExpired removes codes past their time-to-live.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
