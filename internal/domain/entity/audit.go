// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction enumerates the security-relevant events the audit log records.
type AuditAction string

const (
	ActionLogin         AuditAction = "login"
	ActionLogout        AuditAction = "logout"
	ActionRegister      AuditAction = "register"
	ActionPasswordReset AuditAction = "password_reset"
	ActionEmailVerify   AuditAction = "email_verify"
	ActionFailedLogin   AuditAction = "failed_login"
	ActionTokenRefresh  AuditAction = "token_refresh"
)

// AuditStatus marks an audit entry as a success or failure outcome.
type AuditStatus string

const (
	StatusSuccess AuditStatus = "success"
	StatusFailure AuditStatus = "failure"
)

// AuditEntry is an immutable security event. Entries are append-only and
// keep a soft reference to the user: they survive account removal.
type AuditEntry struct {
	ID           uuid.UUID
	UserID       *uuid.UUID // Nil when the event precedes any account (e.g. unknown email).
	Email        string
	Action       AuditAction
	Status       AuditStatus
	IPAddress    string
	UserAgent    string
	DeviceInfo   string
	ErrorMessage string
	Timestamp    time.Time
}
