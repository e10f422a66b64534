package models

import "time"

// Audit actions emitted by the vault for project lifecycle events.
const (
	AuditActionCreate       = "create"
	AuditActionUpdateSecret = "update-secret"
	AuditActionDelete       = "delete"
)

// LoginAttempt is an append-only record of a single authentication attempt.
// The username may reference a non-existent account; the record is immutable
// once written.
type LoginAttempt struct {
	ID        int64     `json:"-"`
	Username  string    `json:"username"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	At        time.Time `json:"ts"`
}

// TableName returns the name of the database table
// associated with the LoginAttempt model.
func (a LoginAttempt) TableName() string {
	return "login_attempts"
}

// ProjectAudit is an append-only record of a security-relevant project
// operation. Details never contain secret values, neither plaintext nor
// ciphertext.
type ProjectAudit struct {
	ID          int64     `json:"-"`
	ProjectID   int64     `json:"project_id"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performed_by"`
	Details     string    `json:"details"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ProjectAudit model.
func (a ProjectAudit) TableName() string {
	return "project_audit"
}
