package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("custody-test")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "custody-test", entry["role"])
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that the Nop logger emits nothing.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestGetChildLogger_InheritsFields verifies that a child logger keeps the
// parent's static fields.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "parent").Logger()}

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent", entry["role"])
}

// TestFromContext_RoundTrip verifies that a logger attached to a context via
// zerolog's WithContext is recovered by FromContext.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("role", "ctx-role").Logger()

	ctx := base.WithContext(context.Background())
	l := FromContext(ctx)
	l.Info().Msg("ctx check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}

// TestFromContext_EmptyContext verifies that FromContext never returns nil,
// even when no logger was attached.
func TestFromContext_EmptyContext(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromRequest_RoundTrip verifies that a logger attached to a request
// context is recovered by FromRequest.
func TestFromRequest_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("role", "req-role").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(base.WithContext(req.Context()))

	l := FromRequest(req)
	l.Info().Msg("req check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-role", entry["role"])
}
