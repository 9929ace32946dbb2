package postgres

import (
	"context"

	"healthvault/internal/domain/entity"
	domainerrors "healthvault/internal/domain/errors"
	"healthvault/internal/domain/repository"
	"healthvault/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// EnsureProfile creates the patient or doctor profile for the user if it does
// not already exist. Admin users carry no profile.
func (repo *profileRepository) EnsureProfile(ctx context.Context, user *entity.User) error {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}

	switch user.Role {
	case entity.RolePatient:
		profile := &model.PatientProfileModel{UserID: user.ID}
		if err := repo.db.WithContext(ctx).Clauses(onConflict).Create(profile).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create patient profile")
		}
	case entity.RoleDoctor:
		profile := &model.DoctorProfileModel{UserID: user.ID}
		if err := repo.db.WithContext(ctx).Clauses(onConflict).Create(profile).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create doctor profile")
		}
	case entity.RoleAdmin:
		// Admin accounts are created operationally and carry no profile row.
	}

	return nil
}
