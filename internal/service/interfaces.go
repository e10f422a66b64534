package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-custody/models"
)

// CredentialStore owns user accounts: password verification, brute-force
// lockout, and the administrative maintenance surface. It is a leaf
// component and has no dependency on the vault.
type CredentialStore interface {
	// CreateUser registers a new account with a freshly salted password
	// hash. The username is normalized (trimmed, lower-cased) before
	// insertion. Returns store.ErrUsernameTaken wrapped when the username
	// already exists.
	CreateUser(ctx context.Context, username, password string, role models.Role) (models.User, error)

	// AttemptLogin verifies the supplied credentials and records the
	// attempt in the audit log regardless of outcome. The returned message
	// is safe to show to the caller: it never reveals whether the account
	// exists. On success the authenticated identity is written into the
	// session.
	AttemptLogin(ctx context.Context, username, password string, meta models.RequestMeta) (models.LoginResult, error)

	// IsAuthenticated reports whether the session carries an
	// authenticated user.
	IsAuthenticated() bool

	// CurrentUser resolves the session state back to a full account
	// record. Returns ErrNotAuthenticated when no user is logged in.
	CurrentUser(ctx context.Context) (models.User, error)

	// Logout removes the authentication keys and invalidates the session.
	Logout()

	// SetUserLockState overwrites the lock deadline and failed-attempt
	// counter of an account. A zero lockedUntil unlocks it.
	SetUserLockState(ctx context.Context, username string, lockedUntil time.Time, failedAttempts int) error

	// SetAdminProtection toggles the flag that blocks destructive
	// operations on the account.
	SetAdminProtection(ctx context.Context, username string, on bool) error

	// IsAdminProtected reports whether the account carries the
	// admin-protection flag.
	IsAdminProtected(ctx context.Context, username string) (bool, error)

	// SetMustChangePassword toggles the deferred password-reset flag.
	SetMustChangePassword(ctx context.Context, username string, on bool) error

	// SetPassword re-salts and re-hashes the account password and resets
	// its lockout state.
	SetPassword(ctx context.Context, username, newPassword string) error

	// DeleteUser removes the account. Admin-protected accounts are
	// refused unless force is set.
	DeleteUser(ctx context.Context, username string, force bool) error

	// ListUsers returns all accounts ordered by ID.
	ListUsers(ctx context.Context) ([]models.User, error)

	// SeedAdminIfEmpty bootstraps the very first account. When the user
	// table is empty (or force is set) it creates one account with the
	// given role; with no password supplied it generates a random one and
	// returns it on the result exactly once. Otherwise it reports why
	// nothing was done.
	SeedAdminIfEmpty(ctx context.Context, username, password string, role models.Role, force bool) (models.SeedResult, error)
}

// SecretVault stores one encrypted secret per project, coupling every
// mutation to an authorization check against the caller's principal and an
// audit record.
type SecretVault interface {
	// CreateProject validates the slug, encrypts the optional secret and
	// persists a new project owned by the principal. Emits a "create"
	// audit entry.
	CreateProject(ctx context.Context, principal models.Principal, name, slug string, metadata map[string]any, secret string, meta models.RequestMeta) (models.Project, error)

	// ProjectByID returns the project when the principal is its owner or
	// an admin. With decrypt set, the stored envelope in the returned
	// value is replaced by the plaintext; the persisted row is never
	// touched. A tampered or malformed envelope yields an empty secret.
	ProjectByID(ctx context.Context, principal models.Principal, id int64, decrypt bool) (models.Project, error)

	// ListProjects returns projects owned by the principal, or every
	// project when all is set and the principal is an admin. The secret
	// field is always absent from list results.
	ListProjects(ctx context.Context, principal models.Principal, all bool) ([]models.Project, error)

	// UpdateProjectSecret re-encrypts the secret under a fresh IV and
	// atomically replaces the stored envelope. Emits an "update-secret"
	// audit entry whose details never include the secret value.
	UpdateProjectSecret(ctx context.Context, principal models.Principal, id int64, newSecret string, meta models.RequestMeta) error

	// DeleteProject removes the project row. Its audit trail survives,
	// extended by a final "delete" entry.
	DeleteProject(ctx context.Context, principal models.Principal, id int64, meta models.RequestMeta) error
}

// AuditLog is the append-only sink for security-relevant events. It is
// injected into both components so tests can substitute an in-memory log.
// Recording is best-effort: sink failures are logged, never propagated into
// the operation that produced the event.
type AuditLog interface {
	// LoginRecorded appends one login attempt.
	LoginRecorded(ctx context.Context, username string, meta models.RequestMeta, success bool, message string)

	// ProjectEvent appends one project lifecycle event. Details must never
	// contain secret values, neither plaintext nor ciphertext.
	ProjectEvent(ctx context.Context, projectID int64, action, performedBy, details string)
}
