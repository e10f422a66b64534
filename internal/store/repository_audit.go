package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/models"
)

// auditRepository is the database-backed implementation of [AuditRepository].
// It only ever appends; rows are never updated or deleted by the core.
type auditRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("AuditRepository created")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

func (r *auditRepository) RecordLoginAttempt(ctx context.Context, attempt models.LoginAttempt) error {
	query, args, err := buildInsertLoginAttemptQuery(r.db.builder, attempt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.execContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*auditRepository.RecordLoginAttempt").Str("username", attempt.Username).Msg("error recording login attempt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *auditRepository) RecordProjectAudit(ctx context.Context, entry models.ProjectAudit) error {
	query, args, err := buildInsertProjectAuditQuery(r.db.builder, entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.execContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*auditRepository.RecordProjectAudit").Int64("project_id", entry.ProjectID).Msg("error recording project audit entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *auditRepository) CountLoginAttempts(ctx context.Context) (int64, error) {
	return r.count(ctx, models.LoginAttempt{}.TableName())
}

func (r *auditRepository) CountProjectAudits(ctx context.Context) (int64, error) {
	return r.count(ctx, models.ProjectAudit{}.TableName())
}

func (r *auditRepository) count(ctx context.Context, table string) (int64, error) {
	query, args, err := buildCountQuery(r.db.builder, table)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}
