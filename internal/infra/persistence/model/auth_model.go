package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. UUID columns align with PostgreSQL schema.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	Role          string    `gorm:"type:varchar(20);not null;default:'patient'"`
	EmailVerified bool      `gorm:"not null;default:false"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SessionModel mirrors the 'sessions' table. Each row is one refresh token,
// stored as a hash.
type SessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash  string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	Revoked    bool      `gorm:"not null;default:false"`
	DeviceInfo string    `gorm:"type:varchar(255)"`
	LastUsedAt time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// OneTimeCodeModel mirrors the 'one_time_codes' table. Codes are deleted on
// use, so presence implies the code was never consumed.
type OneTimeCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Email     string    `gorm:"type:varchar(255);not null;index:idx_codes_email_purpose"`
	Code      string    `gorm:"type:varchar(64);not null;index"`
	Purpose   string    `gorm:"type:varchar(20);not null;index:idx_codes_email_purpose"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OneTimeCodeModel) TableName() string {
	return "one_time_codes"
}

// AuditLogModel mirrors the 'audit_logs' table. Rows are append-only.
type AuditLogModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	Email        string     `gorm:"type:varchar(255);index:idx_audit_email_action_ts"`
	Action       string     `gorm:"type:varchar(30);not null;index:idx_audit_email_action_ts"`
	Status       string     `gorm:"type:varchar(10);not null"`
	IPAddress    string     `gorm:"type:varchar(64)"`
	UserAgent    string     `gorm:"type:varchar(512)"`
	DeviceInfo   string     `gorm:"type:varchar(255)"`
	ErrorMessage string     `gorm:"type:varchar(255)"`
	Timestamp    time.Time  `gorm:"not null;index:idx_audit_email_action_ts"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// PatientProfileModel mirrors the 'patient_profiles' table.
type PatientProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID         uuid.UUID `gorm:"type:uuid;unique;not null"`
	DateOfBirth    *time.Time
	BloodType      string `gorm:"type:varchar(5)"`
	EmergencyPhone string `gorm:"type:varchar(30)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientProfileModel) TableName() string {
	return "patient_profiles"
}

// DoctorProfileModel mirrors the 'doctor_profiles' table.
type DoctorProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;unique;not null"`
	Specialty     string    `gorm:"type:varchar(100)"`
	LicenseNumber string    `gorm:"type:varchar(50)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoctorProfileModel) TableName() string {
	return "doctor_profiles"
}
