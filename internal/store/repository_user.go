package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/models"
)

type userRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.ID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildSelectUserQuery(r.db.builder, map[string]any{"username": username})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(r.db.QueryRowContext(ctx, query, args...))
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := buildSelectUserQuery(r.db.builder, map[string]any{"id": id})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(r.db.QueryRowContext(ctx, query, args...))
}

// scanUser decodes one users row, converting epoch columns and validating
// the stored role string.
func (r *userRepository) scanUser(row *sql.Row) (models.User, error) {
	var (
		user        models.User
		role        string
		lockedUntil int64
		createdAt   int64
	)

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Salt,
		&role, &user.FailedAttempts, &lockedUntil, &user.AdminProtected,
		&user.MustChangePassword, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.scanUser").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.Role, err = models.ParseRole(role)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	user.LockedUntil = fromEpoch(lockedUntil)
	user.CreatedAt = fromEpoch(createdAt)

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var (
			user        models.User
			role        string
			lockedUntil int64
			createdAt   int64
		)
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Salt,
			&role, &user.FailedAttempts, &lockedUntil, &user.AdminProtected,
			&user.MustChangePassword, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		user.Role, err = models.ParseRole(role)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		user.LockedUntil = fromEpoch(lockedUntil)
		user.CreatedAt = fromEpoch(createdAt)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, models.User{}.TableName())
}

func (r *userRepository) ResetLockout(ctx context.Context, id int64) error {
	query, args, err := buildResetLockoutQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.execContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.ResetLockout").Int64("user_id", id).Msg("error resetting lockout")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userRepository) RegisterFailedAttempt(ctx context.Context, id int64, maxFailed int, lockedUntil time.Time) (int, time.Time, error) {
	query, args, err := buildRegisterFailedAttemptQuery(r.db.builder, id, maxFailed, lockedUntil)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		failed  int
		lockSec int64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&failed, &lockSec)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, time.Time{}, ErrUserNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.RegisterFailedAttempt").Int64("user_id", id).Msg("error registering failed attempt")
		return 0, time.Time{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return failed, fromEpoch(lockSec), nil
}

func (r *userRepository) SetLockState(ctx context.Context, username string, lockedUntil time.Time, failedAttempts int) error {
	query, args, err := buildSetLockStateQuery(r.db.builder, username, lockedUntil, failedAttempts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, "*userRepository.SetLockState", query, args)
}

func (r *userRepository) SetAdminProtected(ctx context.Context, username string, on bool) error {
	query, args, err := buildSetUserFlagQuery(r.db.builder, username, "admin_protected", on)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, "*userRepository.SetAdminProtected", query, args)
}

func (r *userRepository) SetMustChangePassword(ctx context.Context, username string, on bool) error {
	query, args, err := buildSetUserFlagQuery(r.db.builder, username, "must_change_password", on)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, "*userRepository.SetMustChangePassword", query, args)
}

func (r *userRepository) UpdatePassword(ctx context.Context, username, passwordHash, salt string) error {
	query, args, err := buildUpdatePasswordQuery(r.db.builder, username, passwordHash, salt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, "*userRepository.UpdatePassword", query, args)
}

func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	query, args, err := buildDeleteUserQuery(r.db.builder, username)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, "*userRepository.DeleteUser", query, args)
}

// execExpectingRow runs a DML statement that targets exactly one user and
// maps "no rows affected" to [ErrUserNotFound].
func (r *userRepository) execExpectingRow(ctx context.Context, caller, query string, args []any) error {
	res, err := r.db.execContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", caller).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) count(ctx context.Context, table string) (int64, error) {
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
