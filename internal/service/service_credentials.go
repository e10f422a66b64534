// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-secret-custody/internal/config"
	"github.com/MKhiriev/go-secret-custody/internal/crypto"
	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/internal/session"
	"github.com/MKhiriev/go-secret-custody/internal/store"
	"github.com/MKhiriev/go-secret-custody/models"
)

// Session keys written by the credential store. Only the authenticated id
// and username ever enter the session; secrets never do.
const (
	sessionKeyUserID   = "auth_user_id"
	sessionKeyUsername = "auth_username"
)

// Messages returned to the end caller. Failure messages are deliberately
// uniform so that the response never reveals whether the account exists;
// the audit log is where the branches are distinguished.
const (
	msgInvalidCredentials = "Invalid username or password."
	msgLoginSuccessful    = "Login successful."
)

// Internal audit messages, one per login outcome branch.
const (
	auditUserNotFound    = "User not found"
	auditAccountLocked   = "Account locked"
	auditInvalidPassword = "Invalid password"
	auditLoginSuccess    = "Login successful"
)

// credentialStore is the concrete implementation of CredentialStore.
// It verifies passwords with the injected PasswordHasher, enforces the
// lockout policy from config and records every login attempt.
type credentialStore struct {
	// userRepository is the data-access layer for account rows.
	userRepository store.UserRepository

	// hasher derives and verifies the salted password hashes.
	hasher crypto.PasswordHasher

	// session receives the authenticated identity after a successful login.
	session session.Session

	// audit is the append-only sink for login attempts.
	audit AuditLog

	// maxFailedLogins is the consecutive-failure count that triggers a lock.
	maxFailedLogins int

	// lockDuration is how long a triggered lock lasts.
	lockDuration time.Duration

	logger *logger.Logger

	// now is stubbed in tests.
	now func() time.Time
}

// NewCredentialStore constructs a CredentialStore wired to the given
// repository, hasher, session and audit sink, with the lockout policy taken
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewCredentialStore(userRepository store.UserRepository, hasher crypto.PasswordHasher, sess session.Session, audit AuditLog, cfg config.App, logger *logger.Logger) CredentialStore {
	return &credentialStore{
		userRepository:  userRepository,
		hasher:          hasher,
		session:         sess,
		audit:           audit,
		maxFailedLogins: cfg.MaxFailedLogins,
		lockDuration:    cfg.LockDuration,
		logger:          logger,
		now:             time.Now,
	}
}

// NormalizeUsername trims surrounding whitespace and lower-cases the
// username. Every lookup and insertion goes through this form, which is
// what makes logins case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (c *credentialStore) CreateUser(ctx context.Context, username, password string, role models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	username = NormalizeUsername(username)
	if username == "" || password == "" {
		log.Error().Msg("empty username or password on user creation")
		return models.User{}, ErrInvalidDataProvided
	}
	if !role.Valid() {
		log.Error().Str("role", role.String()).Msg("unknown role on user creation")
		return models.User{}, ErrInvalidDataProvided
	}

	salt, err := c.hasher.GenerateSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: c.hasher.Hash(password, salt),
		Salt:         hex.EncodeToString(salt),
		Role:         role,
		CreatedAt:    c.now(),
	}

	created, err := c.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// AttemptLogin resolves to exactly one of three outcomes: unknown user,
// locked account, or a password check. Each branch appends an audit record;
// only the audit record distinguishes them, the caller-facing message for
// any failure stays generic apart from the lock countdown.
func (c *credentialStore) AttemptLogin(ctx context.Context, username, password string, meta models.RequestMeta) (models.LoginResult, error) {
	log := logger.FromContext(ctx)
	username = NormalizeUsername(username)
	now := c.now()

	user, err := c.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		c.audit.LoginRecorded(ctx, username, meta, false, auditUserNotFound)
		return models.LoginResult{Success: false, Message: msgInvalidCredentials}, nil
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user lookup failed during login")
		return models.LoginResult{}, fmt.Errorf("user lookup failed during login: %w", err)
	}

	if user.Locked(now) {
		c.audit.LoginRecorded(ctx, username, meta, false, auditAccountLocked)
		return models.LoginResult{
			Success: false,
			Message: fmt.Sprintf("Account is locked. Try again in %d minute(s).", remainingMinutes(user.LockedUntil, now)),
		}, nil
	}

	salt, err := hex.DecodeString(user.Salt)
	if err != nil {
		log.Err(err).Str("username", username).Msg("stored salt is not valid hex")
		return models.LoginResult{}, fmt.Errorf("stored salt is not valid hex: %w", err)
	}

	if c.hasher.Verify(password, salt, user.PasswordHash) {
		if err := c.userRepository.ResetLockout(ctx, user.ID); err != nil {
			log.Err(err).Str("username", username).Msg("lockout reset failed after successful login")
			return models.LoginResult{}, fmt.Errorf("lockout reset failed after successful login: %w", err)
		}

		c.session.Set(sessionKeyUserID, user.ID)
		c.session.Set(sessionKeyUsername, user.Username)

		c.audit.LoginRecorded(ctx, username, meta, true, auditLoginSuccess)
		return models.LoginResult{Success: true, Message: msgLoginSuccessful}, nil
	}

	attempts, lockedUntil, err := c.userRepository.RegisterFailedAttempt(ctx, user.ID, c.maxFailedLogins, now.Add(c.lockDuration))
	if err != nil {
		log.Err(err).Str("username", username).Msg("failed-attempt registration ended with error")
		return models.LoginResult{}, fmt.Errorf("failed-attempt registration ended with error: %w", err)
	}

	c.audit.LoginRecorded(ctx, username, meta, false, auditInvalidPassword)

	if attempts >= c.maxFailedLogins {
		return models.LoginResult{
			Success: false,
			Message: fmt.Sprintf("Too many failed attempts. Account locked for %d minute(s).", remainingMinutes(lockedUntil, now)),
		}, nil
	}
	return models.LoginResult{Success: false, Message: msgInvalidCredentials}, nil
}

// remainingMinutes reports how many minutes remain until deadline,
// ceiling-rounded so that a 30-second remainder still reads as one minute.
func remainingMinutes(deadline, now time.Time) int64 {
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int64((remaining + time.Minute - 1) / time.Minute)
}

func (c *credentialStore) IsAuthenticated() bool {
	return c.session.Has(sessionKeyUserID)
}

func (c *credentialStore) CurrentUser(ctx context.Context) (models.User, error) {
	id, ok := c.session.Get(sessionKeyUserID, nil).(int64)
	if !ok {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := c.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("session user lookup failed: %w", err)
	}
	return user, nil
}

func (c *credentialStore) Logout() {
	c.session.Remove(sessionKeyUserID)
	c.session.Remove(sessionKeyUsername)
	c.session.Invalidate()
}

func (c *credentialStore) SetUserLockState(ctx context.Context, username string, lockedUntil time.Time, failedAttempts int) error {
	return c.userRepository.SetLockState(ctx, NormalizeUsername(username), lockedUntil, failedAttempts)
}

func (c *credentialStore) SetAdminProtection(ctx context.Context, username string, on bool) error {
	return c.userRepository.SetAdminProtected(ctx, NormalizeUsername(username), on)
}

func (c *credentialStore) IsAdminProtected(ctx context.Context, username string) (bool, error) {
	user, err := c.userRepository.FindUserByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		return false, err
	}
	return user.AdminProtected, nil
}

func (c *credentialStore) SetMustChangePassword(ctx context.Context, username string, on bool) error {
	return c.userRepository.SetMustChangePassword(ctx, NormalizeUsername(username), on)
}

func (c *credentialStore) SetPassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	salt, err := c.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("salt generation failed: %w", err)
	}

	return c.userRepository.UpdatePassword(ctx, NormalizeUsername(username), c.hasher.Hash(newPassword, salt), hex.EncodeToString(salt))
}

func (c *credentialStore) DeleteUser(ctx context.Context, username string, force bool) error {
	username = NormalizeUsername(username)

	user, err := c.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.AdminProtected && !force {
		return fmt.Errorf("%w: account %q is admin-protected", ErrForbidden, username)
	}

	return c.userRepository.DeleteUser(ctx, username)
}

func (c *credentialStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return c.userRepository.ListUsers(ctx)
}

// SeedAdminIfEmpty bootstraps the first account. A password generated here
// exists only on the returned result; it is never persisted or logged.
func (c *credentialStore) SeedAdminIfEmpty(ctx context.Context, username, password string, role models.Role, force bool) (models.SeedResult, error) {
	username = NormalizeUsername(username)

	count, err := c.userRepository.CountUsers(ctx)
	if err != nil {
		return models.SeedResult{}, fmt.Errorf("counting users failed: %w", err)
	}
	if count > 0 && !force {
		return models.SeedResult{
			Created: false,
			Message: fmt.Sprintf("%d account(s) already exist; use force to seed anyway", count),
		}, nil
	}

	generated := ""
	if password == "" {
		generated, err = crypto.GeneratePassword()
		if err != nil {
			return models.SeedResult{}, fmt.Errorf("password generation failed: %w", err)
		}
		password = generated
	}

	user, err := c.CreateUser(ctx, username, password, role)
	if err != nil {
		return models.SeedResult{}, err
	}

	return models.SeedResult{
		Created:  true,
		Username: user.Username,
		Password: generated,
		Message:  fmt.Sprintf("account %q created with role %q", user.Username, user.Role),
	}, nil
}
