package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-custody/internal/config"
	"github.com/MKhiriev/go-secret-custody/internal/mock"
	"github.com/MKhiriev/go-secret-custody/internal/service"
	"github.com/MKhiriev/go-secret-custody/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCommandApp(t *testing.T, ctrl *gomock.Controller, input string) (*app, *mock.MockCredentialStore) {
	t.Helper()

	mockCredentials := mock.NewMockCredentialStore(ctrl)

	a := &app{
		services: &service.Services{CredentialStore: mockCredentials},
		cfg: &config.StructuredConfig{
			App: config.App{
				MaxFailedLogins: 5,
				LockDuration:    15 * time.Minute,
			},
		},
		in:  bufio.NewReader(strings.NewReader(input)),
		out: &bytes.Buffer{},
	}

	return a, mockCredentials
}

func TestUserLock_RecordsConfiguredAttemptCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockCredentials := newCommandApp(t, ctrl, "")
	ctx := context.Background()

	before := time.Now()
	mockCredentials.EXPECT().SetUserLockState(ctx, "alice", gomock.Any(), 5).DoAndReturn(
		func(_ context.Context, _ string, until time.Time, _ int) error {
			// Default duration comes from the configured lockout policy.
			assert.WithinDuration(t, before.Add(15*time.Minute), until, 5*time.Second)
			return nil
		},
	)

	require.NoError(t, a.userLock(ctx, []string{"-username", "alice"}))
}

func TestUserUnlock_ClearsLockAndCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockCredentials := newCommandApp(t, ctrl, "")
	ctx := context.Background()

	mockCredentials.EXPECT().SetUserLockState(ctx, "alice", time.Time{}, 0).Return(nil)

	require.NoError(t, a.userUnlock(ctx, []string{"-username", "alice"}))
}

func TestUserAdd_PipedPasswordPrompts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Both password prompts are answered through the same piped stream.
	a, mockCredentials := newCommandApp(t, ctrl, "s3cret\ns3cret\n")
	ctx := context.Background()

	mockCredentials.EXPECT().CreateUser(ctx, "alice", "s3cret", models.RoleUser).Return(
		models.User{ID: 7, Username: "alice", Role: models.RoleUser}, nil)

	require.NoError(t, a.userAdd(ctx, []string{"-username", "alice"}))
	assert.Contains(t, a.out.(*bytes.Buffer).String(), `account "alice" created with id 7`)
}
