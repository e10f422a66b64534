package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// Assigned by the database on creation and never reused.
	ID int64 `json:"-"`

	// Username is the unique login identifier.
	// Always stored normalized: trimmed and lower-cased.
	Username string `json:"username"`

	// PasswordHash is the PBKDF2-SHA256 derivation of the user's password
	// and per-user salt, hex-encoded. Never a plaintext password.
	PasswordHash string `json:"-"`

	// Salt is the per-user random salt, hex-encoded. Generated once at
	// creation and regenerated on every password change.
	Salt string `json:"-"`

	// Role is the authorization role of the account.
	Role Role `json:"role"`

	// FailedAttempts counts consecutive failed logins. Reset to zero on a
	// successful login or an explicit unlock.
	FailedAttempts int `json:"failed_attempts"`

	// LockedUntil is the absolute time until which login attempts are
	// rejected. The zero value means the account is not locked.
	LockedUntil time.Time `json:"locked_until"`

	// AdminProtected blocks destructive operations (deletion, lock
	// overrides) on this account unless the caller explicitly forces them.
	AdminProtected bool `json:"admin_protected"`

	// MustChangePassword marks the account for deferred password-reset
	// enforcement by the caller.
	MustChangePassword bool `json:"must_change_password"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Locked reports whether the account is locked at the given moment.
func (u User) Locked(now time.Time) bool {
	return now.Before(u.LockedUntil)
}

// Principal returns the authenticated identity derived from this account.
func (u User) Principal() Principal {
	return Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
