package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/internal/mock"
	"github.com/MKhiriev/go-secret-custody/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_LoginRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockAuditRepository(ctrl)
	sink := NewAuditLog(mockRepo, logger.Nop()).(*auditLog)

	now := time.Now()
	sink.now = func() time.Time { return now }

	ctx := context.Background()

	mockRepo.EXPECT().RecordLoginAttempt(ctx, models.LoginAttempt{
		Username:  "alice",
		IP:        "unknown",
		UserAgent: "unknown",
		Success:   false,
		Message:   "Invalid password",
		At:        now,
	}).Return(nil)

	sink.LoginRecorded(ctx, "alice", models.RequestMeta{}, false, "Invalid password")
}

func TestAuditLog_SinkFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockAuditRepository(ctrl)
	sink := NewAuditLog(mockRepo, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().RecordLoginAttempt(ctx, gomock.Any()).Return(errors.New("disk full"))
	mockRepo.EXPECT().RecordProjectAudit(ctx, gomock.Any()).Return(errors.New("disk full"))

	// Neither call may panic or surface the error; an audit outage must not
	// block the operation it records.
	assert.NotPanics(t, func() {
		sink.LoginRecorded(ctx, "alice", models.RequestMeta{IP: "203.0.113.7"}, true, "Login successful")
		sink.ProjectEvent(ctx, 10, models.AuditActionDelete, "alice", "project deleted")
	})
}
