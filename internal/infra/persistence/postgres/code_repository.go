package postgres

import (
	"context"
	"time"

	"healthvault/internal/domain/entity"
	domainerrors "healthvault/internal/domain/errors"
	"healthvault/internal/domain/repository"
	"healthvault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// codeRepository implements the domain.CodeRepository interface.
type codeRepository struct {
	db *gorm.DB
}

// NewCodeRepository is the constructor for codeRepository.
func NewCodeRepository(db *gorm.DB) repository.CodeRepository {
	return &codeRepository{db: db}
}

// Create persists a new one-time code.
func (repo *codeRepository) Create(ctx context.Context, code *entity.OneTimeCode) error {
	codeM := fromCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create one-time code")
	}

	// Update the entity with generated values
	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindByEmailAndCode retrieves a code by purpose, email and code value.
func (repo *codeRepository) FindByEmailAndCode(ctx context.Context, purpose entity.CodePurpose, email, code string) (*entity.OneTimeCode, error) {
	var codeM model.OneTimeCodeModel

	if err := repo.db.WithContext(ctx).
		Where("purpose = ? AND email = ? AND code = ?", string(purpose), email, code).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCodeDomain(&codeM), nil
}

// FindByCode retrieves a code by purpose and code value alone. Used for
// verification and reset links where the email is not resubmitted.
func (repo *codeRepository) FindByCode(ctx context.Context, purpose entity.CodePurpose, code string) (*entity.OneTimeCode, error) {
	var codeM model.OneTimeCodeModel

	if err := repo.db.WithContext(ctx).
		Where("purpose = ? AND code = ?", string(purpose), code).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCodeDomain(&codeM), nil
}

// Consume deletes a code by ID. A consumed code is indistinguishable from one
// that never existed.
func (repo *codeRepository) Consume(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OneTimeCodeModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// DeleteByEmail removes all codes of a purpose for an email address.
func (repo *codeRepository) DeleteByEmail(ctx context.Context, purpose entity.CodePurpose, email string) error {
	if err := repo.db.WithContext(ctx).
		Where("purpose = ? AND email = ?", string(purpose), email).
		Delete(&model.OneTimeCodeModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteByUserID removes all codes of a purpose for a user.
func (repo *codeRepository) DeleteByUserID(ctx context.Context, purpose entity.CodePurpose, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("purpose = ? AND user_id = ?", string(purpose), userID).
		Delete(&model.OneTimeCodeModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteExpired removes all expired codes. Returns the number of deleted rows.
func (repo *codeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.OneTimeCodeModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toCodeDomain converts a GORM OneTimeCodeModel to a domain OneTimeCode entity.
func toCodeDomain(data *model.OneTimeCodeModel) *entity.OneTimeCode {
	if data == nil {
		return nil
	}

	return &entity.OneTimeCode{
		ID:        data.ID,
		UserID:    data.UserID,
		Email:     data.Email,
		Code:      data.Code,
		Purpose:   entity.CodePurpose(data.Purpose),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromCodeDomain converts a domain OneTimeCode entity to a GORM OneTimeCodeModel.
func fromCodeDomain(data *entity.OneTimeCode) *model.OneTimeCodeModel {
	if data == nil {
		return nil
	}

	return &model.OneTimeCodeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Email:     data.Email,
		Code:      data.Code,
		Purpose:   string(data.Purpose),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
