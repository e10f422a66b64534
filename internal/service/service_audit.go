package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/internal/store"
	"github.com/MKhiriev/go-secret-custody/models"
)

// auditLog is the concrete AuditLog writing into the relational audit
// tables. A failed append is logged and swallowed so that an audit outage
// never blocks a login or a vault operation.
type auditLog struct {
	auditRepository store.AuditRepository

	logger *logger.Logger

	now func() time.Time
}

// NewAuditLog constructs an AuditLog backed by the given repository.
func NewAuditLog(auditRepository store.AuditRepository, logger *logger.Logger) AuditLog {
	return &auditLog{
		auditRepository: auditRepository,
		logger:          logger,
		now:             time.Now,
	}
}

func (a *auditLog) LoginRecorded(ctx context.Context, username string, meta models.RequestMeta, success bool, message string) {
	attempt := models.LoginAttempt{
		Username:  username,
		IP:        meta.IPOrUnknown(),
		UserAgent: meta.UserAgentOrUnknown(),
		Success:   success,
		Message:   message,
		At:        a.now(),
	}

	if err := a.auditRepository.RecordLoginAttempt(ctx, attempt); err != nil {
		a.logger.Err(err).Str("username", username).Msg("recording login attempt failed")
	}
}

func (a *auditLog) ProjectEvent(ctx context.Context, projectID int64, action, performedBy, details string) {
	entry := models.ProjectAudit{
		ProjectID:   projectID,
		Action:      action,
		PerformedBy: performedBy,
		Details:     details,
		CreatedAt:   a.now(),
	}

	if err := a.auditRepository.RecordProjectAudit(ctx, entry); err != nil {
		a.logger.Err(err).Int64("project_id", projectID).Str("action", action).Msg("recording project audit entry failed")
	}
}
