package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/migrations"
)

// DB wraps the raw sql.DB handle together with everything backend-specific:
// the driver name, the squirrel statement builder configured with the
// backend's placeholder format, and the driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the schema up to date by applying the embedded goose
// migrations for the connected backend. Safe to run on every startup; the
// migrations create tables idempotently and only ever add columns.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Transient statement failures (SQLite lock contention, Postgres deadlock
// rollback or connection loss) are retried with exponential backoff before
// the error reaches the repositories.
const (
	execMaxRetries = 3
	execRetryBase  = 50 * time.Millisecond
)

// execContext runs a DML statement, retrying when the backend's error
// classifier reports the failure as transient.
func (db *DB) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result

	backoff := retry.WithMaxRetries(execMaxRetries, retry.NewExponential(execRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var execErr error
		res, execErr = db.ExecContext(ctx, query, args...)
		if execErr != nil && db.errorClassificator.Classify(execErr) == Retryable {
			db.logger.Warn().Err(execErr).Str("func", "*DB.execContext").Msg("transient DB error, retrying statement")
			return retry.RetryableError(execErr)
		}
		return execErr
	})

	return res, err
}

// Times are persisted as Unix epoch seconds in INTEGER/BIGINT columns, the
// same for both backends. Zero maps to the zero time.Time and back, so an
// unlocked account is stored as locked_until = 0.

func epoch(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func fromEpoch(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
