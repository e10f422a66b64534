// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secret-custody/models"
)

// Column lists shared by the query builders below. Keeping them in one place
// guards against SELECT/Scan drift.
var (
	userColumns = []string{
		"id", "username", "password_hash", "salt", "role",
		"failed_attempts", "locked_until", "admin_protected",
		"must_change_password", "created_at",
	}

	// projectListColumns deliberately omits secret_data: list queries must
	// never carry the envelope out of the database.
	projectListColumns = []string{
		"id", "slug", "name", "owner", "metadata", "created_at", "updated_at",
	}

	projectColumns = []string{
		"id", "slug", "name", "owner", "metadata", "secret_data",
		"created_at", "updated_at",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("username", "password_hash", "salt", "role",
			"failed_attempts", "locked_until", "admin_protected",
			"must_change_password", "created_at").
		Values(u.Username, u.PasswordHash, u.Salt, u.Role.String(),
			u.FailedAttempts, epoch(u.LockedUntil), u.AdminProtected,
			u.MustChangePassword, epoch(u.CreatedAt)).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		OrderBy("id").
		ToSql()
}

func buildResetLockoutQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Update("users").
		Set("failed_attempts", 0).
		Set("locked_until", 0).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildRegisterFailedAttemptQuery produces the single conditional UPDATE that
// both increments the counter and arms the lock when the limit is reached.
// Doing it in one statement (instead of read-then-write) keeps concurrent
// failed logins against the same account from losing increments.
func buildRegisterFailedAttemptQuery(b sq.StatementBuilderType, id int64, maxFailed int, lockedUntil time.Time) (string, []any, error) {
	return b.Update("users").
		Set("failed_attempts", sq.Expr("failed_attempts + 1")).
		Set("locked_until", sq.Expr(
			"CASE WHEN failed_attempts + 1 >= ? THEN ? ELSE locked_until END",
			maxFailed, epoch(lockedUntil))).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING failed_attempts, locked_until").
		ToSql()
}

func buildSetLockStateQuery(b sq.StatementBuilderType, username string, lockedUntil time.Time, failedAttempts int) (string, []any, error) {
	return b.Update("users").
		Set("failed_attempts", failedAttempts).
		Set("locked_until", epoch(lockedUntil)).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSetUserFlagQuery(b sq.StatementBuilderType, username, column string, on bool) (string, []any, error) {
	return b.Update("users").
		Set(column, on).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, username, passwordHash, salt string) (string, []any, error) {
	return b.Update("users").
		Set("password_hash", passwordHash).
		Set("salt", salt).
		Set("failed_attempts", 0).
		Set("locked_until", 0).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Delete("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertProjectQuery(b sq.StatementBuilderType, p models.Project, metadataJSON string, secret any) (string, []any, error) {
	return b.Insert("projects").
		Columns("slug", "name", "owner", "metadata", "secret_data",
			"created_at", "updated_at").
		Values(p.Slug, p.Name, p.Owner, metadataJSON, secret,
			epoch(p.CreatedAt), epoch(p.UpdatedAt)).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectProjectQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

func buildListProjectsQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	q := b.Select(projectListColumns...).
		From("projects").
		OrderBy("id")
	if owner != "" {
		q = q.Where(sq.Eq{"owner": owner})
	}
	return q.ToSql()
}

func buildUpdateProjectSecretQuery(b sq.StatementBuilderType, id int64, envelope string, updatedAt time.Time) (string, []any, error) {
	return b.Update("projects").
		Set("secret_data", envelope).
		Set("updated_at", epoch(updatedAt)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteProjectQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertLoginAttemptQuery(b sq.StatementBuilderType, a models.LoginAttempt) (string, []any, error) {
	return b.Insert("login_attempts").
		Columns("username", "ip", "user_agent", "success", "message", "ts").
		Values(a.Username, a.IP, a.UserAgent, a.Success, a.Message, epoch(a.At)).
		ToSql()
}

func buildInsertProjectAuditQuery(b sq.StatementBuilderType, e models.ProjectAudit) (string, []any, error) {
	return b.Insert("project_audit").
		Columns("project_id", "action", "performed_by", "details", "created_at").
		Values(e.ProjectID, e.Action, e.PerformedBy, e.Details, epoch(e.CreatedAt)).
		ToSql()
}

func buildCountQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(table).
		ToSql()
}
