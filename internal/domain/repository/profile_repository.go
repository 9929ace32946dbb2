package repository

import (
	"context"

	"healthvault/internal/domain/entity"
)

// ProfileRepository manages the role-specific profile row that accompanies a
// registered user.
type ProfileRepository interface {
	// EnsureProfile creates the patient or doctor profile for the user if it
	// does not already exist. Admin users carry no profile. Provisioning is
	// idempotent.
	EnsureProfile(ctx context.Context, user *entity.User) error
}
