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

// auditRepository implements the domain.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// Create appends a new audit entry.
func (repo *auditRepository) Create(ctx context.Context, entry *entity.AuditEntry) error {
	entryM := fromAuditDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit entry")
	}

	entry.ID = entryM.ID

	return nil
}

// ListByUserID returns the most recent entries for a user, newest first.
func (repo *auditRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AuditEntry, error) {
	var entryModels []*model.AuditLogModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*entity.AuditEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toAuditDomain(entryM))
	}

	return entries, nil
}

// CountFailedLogins counts failed_login entries for an email within the
// trailing window. Drives the login throttle.
func (repo *auditRepository) CountFailedLogins(ctx context.Context, email string, since time.Time) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AuditLogModel{}).
		Where("email = ? AND action = ? AND timestamp > ?", email, string(entity.ActionFailedLogin), since).
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// --- Mapper Functions ---

// toAuditDomain converts a GORM AuditLogModel to a domain AuditEntry entity.
func toAuditDomain(data *model.AuditLogModel) *entity.AuditEntry {
	if data == nil {
		return nil
	}

	return &entity.AuditEntry{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        data.Email,
		Action:       entity.AuditAction(data.Action),
		Status:       entity.AuditStatus(data.Status),
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		DeviceInfo:   data.DeviceInfo,
		ErrorMessage: data.ErrorMessage,
		Timestamp:    data.Timestamp,
	}
}

// fromAuditDomain converts a domain AuditEntry entity to a GORM AuditLogModel.
func fromAuditDomain(data *entity.AuditEntry) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	return &model.AuditLogModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        data.Email,
		Action:       string(data.Action),
		Status:       string(data.Status),
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		DeviceInfo:   data.DeviceInfo,
		ErrorMessage: data.ErrorMessage,
		Timestamp:    data.Timestamp,
	}
}
