package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-custody/models"
)

// UserRepository is the data-access layer for user accounts.
// All username parameters are expected pre-normalized (trimmed, lower-case).
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the assigned ID.
	// Returns [ErrUsernameTaken] on a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username, or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the account with the given ID, or [ErrUserNotFound].
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all accounts ordered by ID.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CountUsers returns the total number of accounts.
	CountUsers(ctx context.Context) (int64, error)

	// ResetLockout zeroes the failed-attempt counter and clears the lock of
	// the account, typically after a successful login.
	ResetLockout(ctx context.Context, id int64) error

	// RegisterFailedAttempt atomically increments the failed-attempt counter
	// of the account and, when the new count reaches maxFailed, sets the
	// lock to lockedUntil — all in a single conditional statement so that
	// concurrent attempts never lose increments. It returns the new counter
	// value and the lock deadline now in effect (zero when not locked).
	RegisterFailedAttempt(ctx context.Context, id int64, maxFailed int, lockedUntil time.Time) (int, time.Time, error)

	// SetLockState overwrites the lock deadline and failed-attempt counter
	// of the account. A zero lockedUntil unlocks it.
	SetLockState(ctx context.Context, username string, lockedUntil time.Time, failedAttempts int) error

	// SetAdminProtected toggles the admin-protection flag of the account.
	SetAdminProtected(ctx context.Context, username string, on bool) error

	// SetMustChangePassword toggles the must-change-password flag of the
	// account.
	SetMustChangePassword(ctx context.Context, username string, on bool) error

	// UpdatePassword replaces the password hash and salt of the account and
	// resets its lockout state.
	UpdatePassword(ctx context.Context, username, passwordHash, salt string) error

	// DeleteUser removes the account. Admin-protection checks are the
	// caller's responsibility.
	DeleteUser(ctx context.Context, username string) error
}

// ProjectRepository is the data-access layer for projects and their
// encrypted secret envelopes.
type ProjectRepository interface {
	// CreateProject inserts a new project and returns it with the assigned
	// ID. Returns [ErrSlugTaken] on a duplicate slug.
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	// FindProjectByID returns the project with the given ID including its
	// secret envelope, or [ErrProjectNotFound].
	FindProjectByID(ctx context.Context, id int64) (models.Project, error)

	// ListProjects returns all projects. The secret envelope is never
	// selected by list queries.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// ListProjectsByOwner returns the projects owned by the given username.
	// The secret envelope is never selected by list queries.
	ListProjectsByOwner(ctx context.Context, owner string) ([]models.Project, error)

	// UpdateProjectSecret atomically replaces the stored envelope and bumps
	// the update timestamp.
	UpdateProjectSecret(ctx context.Context, id int64, envelope string, updatedAt time.Time) error

	// DeleteProject removes the project row. Audit records survive.
	DeleteProject(ctx context.Context, id int64) error

	// CountProjects returns the total number of projects.
	CountProjects(ctx context.Context) (int64, error)
}

// AuditRepository is the append-only persistence sink for security-relevant
// events. Records are immutable once written; there are no update or delete
// operations.
type AuditRepository interface {
	// RecordLoginAttempt appends a login attempt record.
	RecordLoginAttempt(ctx context.Context, attempt models.LoginAttempt) error

	// RecordProjectAudit appends a project audit record.
	RecordProjectAudit(ctx context.Context, entry models.ProjectAudit) error

	// CountLoginAttempts returns the total number of login attempt records.
	CountLoginAttempts(ctx context.Context) (int64, error)

	// CountProjectAudits returns the total number of project audit records.
	CountProjectAudits(ctx context.Context) (int64, error)
}
