// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-custody/internal/config"
	"github.com/MKhiriev/go-secret-custody/internal/crypto"
	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/internal/mock"
	"github.com/MKhiriev/go-secret-custody/internal/session"
	"github.com/MKhiriev/go-secret-custody/internal/store"
	"github.com/MKhiriev/go-secret-custody/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPolicy = config.App{MaxFailedLogins: 5, LockDuration: 15 * time.Minute}

func newTestCredentialStore(t *testing.T, ctrl *gomock.Controller) (*credentialStore, *mock.MockUserRepository, *mock.MockAuditLog, session.Session) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockAudit := mock.NewMockAuditLog(ctrl)
	sess := session.NewMemorySession()

	svc := NewCredentialStore(mockUsers, crypto.NewPasswordHasher(), sess, mockAudit, testPolicy, logger.Nop()).(*credentialStore)

	return svc, mockUsers, mockAudit, sess
}

// seededUser returns an account whose stored hash matches password.
func seededUser(t *testing.T, username, password string) models.User {
	t.Helper()

	hasher := crypto.NewPasswordHasher()
	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	return models.User{
		ID:           1,
		Username:     username,
		PasswordHash: hasher.Hash(password, salt),
		Salt:         hex.EncodeToString(salt),
		Role:         models.RoleUser,
	}
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestCredentialStore_CreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Username, "username must be normalized before insertion")
			assert.NotEmpty(t, user.PasswordHash)
			assert.NotContains(t, user.PasswordHash, "Secret123!", "hash must not embed the plaintext password")
			assert.Len(t, user.Salt, 32, "16 random bytes, hex-encoded")
			assert.Equal(t, models.RoleUser, user.Role)

			user.ID = 42
			return user, nil
		},
	)

	created, err := svc.CreateUser(ctx, "  Alice ", "Secret123!", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestCredentialStore_CreateUser_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameTaken)

	_, err := svc.CreateUser(ctx, "alice", "Secret123!", models.RoleUser)
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestCredentialStore_CreateUser_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "", "Secret123!", models.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateUser(ctx, "alice", "", models.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateUser(ctx, "alice", "Secret123!", models.Role("superuser"))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── AttemptLogin ─────────────────────────────────────────────────────────────

func TestCredentialStore_AttemptLogin_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAudit, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()
	meta := models.RequestMeta{IP: "203.0.113.7"}

	mockUsers.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)
	mockAudit.EXPECT().LoginRecorded(ctx, "ghost", meta, false, auditUserNotFound)

	result, err := svc.AttemptLogin(ctx, "ghost", "whatever", meta)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, msgInvalidCredentials, result.Message, "message must not reveal whether the account exists")
}

func TestCredentialStore_AttemptLogin_Success_CaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAudit, sess := newTestCredentialStore(t, ctrl)
	ctx := context.Background()
	meta := models.RequestMeta{IP: "203.0.113.7"}

	user := seededUser(t, "alice", "Secret123!")
	user.FailedAttempts = 3

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
	mockUsers.EXPECT().ResetLockout(ctx, user.ID).Return(nil)
	mockAudit.EXPECT().LoginRecorded(ctx, "alice", meta, true, auditLoginSuccess)

	result, err := svc.AttemptLogin(ctx, " ALICE ", "Secret123!", meta)
	require.NoError(t, err)
	assert.True(t, result.Success)

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, user.ID, sess.Get(sessionKeyUserID, nil))
	assert.Equal(t, "alice", sess.Get(sessionKeyUsername, nil))
}

func TestCredentialStore_AttemptLogin_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAudit, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()
	meta := models.RequestMeta{}

	now := time.Now()
	svc.now = func() time.Time { return now }

	user := seededUser(t, "alice", "Secret123!")
	user.LockedUntil = now.Add(10*time.Minute + 30*time.Second)

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
	mockAudit.EXPECT().LoginRecorded(ctx, "alice", meta, false, auditAccountLocked)

	// Correct password, but the lock branch must win without touching any
	// counter. No ResetLockout or RegisterFailedAttempt is expected.
	result, err := svc.AttemptLogin(ctx, "alice", "Secret123!", meta)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "11 minute", "remaining minutes are ceiling-rounded")
}

func TestCredentialStore_AttemptLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAudit, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()
	meta := models.RequestMeta{}

	now := time.Now()
	svc.now = func() time.Time { return now }

	user := seededUser(t, "alice", "Secret123!")

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
	mockUsers.EXPECT().RegisterFailedAttempt(ctx, user.ID, 5, now.Add(15*time.Minute)).Return(3, time.Time{}, nil)
	mockAudit.EXPECT().LoginRecorded(ctx, "alice", meta, false, auditInvalidPassword)

	result, err := svc.AttemptLogin(ctx, "alice", "wrong-password", meta)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, msgInvalidCredentials, result.Message)
	assert.False(t, svc.IsAuthenticated())
}

func TestCredentialStore_AttemptLogin_FifthFailureLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAudit, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()
	meta := models.RequestMeta{}

	now := time.Now()
	svc.now = func() time.Time { return now }

	user := seededUser(t, "alice", "Secret123!")
	user.FailedAttempts = 4

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
	mockUsers.EXPECT().RegisterFailedAttempt(ctx, user.ID, 5, now.Add(15*time.Minute)).Return(5, now.Add(15*time.Minute), nil)
	mockAudit.EXPECT().LoginRecorded(ctx, "alice", meta, false, auditInvalidPassword)

	result, err := svc.AttemptLogin(ctx, "alice", "wrong-password", meta)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "15 minute", "reaching the limit reports the lock duration")
}

func TestCredentialStore_AttemptLogin_LockExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAudit, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()
	meta := models.RequestMeta{}

	user := seededUser(t, "alice", "Secret123!")
	user.FailedAttempts = 5
	user.LockedUntil = time.Now().Add(-time.Minute)

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
	mockUsers.EXPECT().ResetLockout(ctx, user.ID).Return(nil)
	mockAudit.EXPECT().LoginRecorded(ctx, "alice", meta, true, auditLoginSuccess)

	result, err := svc.AttemptLogin(ctx, "alice", "Secret123!", meta)
	require.NoError(t, err)
	assert.True(t, result.Success, "an expired lock must not block a correct password")
}

// ── Session-derived state ────────────────────────────────────────────────────

func TestCredentialStore_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, sess := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	_, err := svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	sess.Set(sessionKeyUserID, int64(7))
	sess.Set(sessionKeyUsername, "alice")

	mockUsers.EXPECT().FindUserByID(ctx, int64(7)).Return(models.User{ID: 7, Username: "alice", Role: models.RoleAdmin}, nil)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.Principal().IsAdmin())
}

func TestCredentialStore_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, sess := newTestCredentialStore(t, ctrl)

	sess.Set(sessionKeyUserID, int64(7))
	sess.Set(sessionKeyUsername, "alice")
	require.True(t, svc.IsAuthenticated())

	svc.Logout()

	assert.False(t, svc.IsAuthenticated())
	assert.False(t, sess.Has(sessionKeyUsername))
}

// ── Maintenance surface ──────────────────────────────────────────────────────

func TestCredentialStore_DeleteUser_AdminProtected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	protected := models.User{ID: 1, Username: "root", AdminProtected: true}

	mockUsers.EXPECT().FindUserByUsername(ctx, "root").Return(protected, nil)

	err := svc.DeleteUser(ctx, "root", false)
	assert.ErrorIs(t, err, ErrForbidden)

	mockUsers.EXPECT().FindUserByUsername(ctx, "root").Return(protected, nil)
	mockUsers.EXPECT().DeleteUser(ctx, "root").Return(nil)

	assert.NoError(t, svc.DeleteUser(ctx, "root", true))
}

func TestCredentialStore_SetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	err := svc.SetPassword(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	mockUsers.EXPECT().UpdatePassword(ctx, "alice", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, passwordHash, salt string) error {
			assert.Len(t, salt, 32, "a password change re-salts")
			assert.NotEmpty(t, passwordHash)
			return nil
		},
	)

	assert.NoError(t, svc.SetPassword(ctx, " Alice", "NewSecret456!"))
}

// ── SeedAdminIfEmpty ─────────────────────────────────────────────────────────

func TestCredentialStore_SeedAdminIfEmpty_GeneratesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CountUsers(ctx).Return(int64(0), nil)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			user.ID = 1
			return user, nil
		},
	)

	result, err := svc.SeedAdminIfEmpty(ctx, "admin", "", models.RoleAdmin, false)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "admin", result.Username)
	assert.Len(t, result.Password, 16, "generated password is returned exactly once")
}

func TestCredentialStore_SeedAdminIfEmpty_UsersExist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CountUsers(ctx).Return(int64(2), nil)

	result, err := svc.SeedAdminIfEmpty(ctx, "admin", "", models.RoleAdmin, false)
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Contains(t, result.Message, "already exist")
	assert.Empty(t, result.Password)
}

func TestCredentialStore_SeedAdminIfEmpty_Forced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CountUsers(ctx).Return(int64(2), nil)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			user.ID = 3
			return user, nil
		},
	)

	result, err := svc.SeedAdminIfEmpty(ctx, "second-admin", "chosen-password", models.RoleAdmin, true)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Empty(t, result.Password, "a caller-chosen password is never echoed back")
}

func TestCredentialStore_AttemptLogin_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestCredentialStore(t, ctrl)
	ctx := context.Background()

	storageErr := errors.New("connection reset")
	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, storageErr)

	_, err := svc.AttemptLogin(ctx, "alice", "Secret123!", models.RequestMeta{})
	assert.ErrorIs(t, err, storageErr, "storage failures propagate instead of masquerading as bad credentials")
}
