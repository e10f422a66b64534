package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestMetaFromRequest(t *testing.T) {
	t.Run("remote addr with port", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "203.0.113.7:51234"
		r.Header.Set("User-Agent", "test-agent/1.0")

		meta := RequestMetaFromRequest(r)

		assert.Equal(t, "203.0.113.7", meta.IP)
		assert.Equal(t, "test-agent/1.0", meta.UserAgent)
	})

	t.Run("x-forwarded-for wins", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.0.0.1:80"
		r.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")

		meta := RequestMetaFromRequest(r)

		assert.Equal(t, "198.51.100.9", meta.IP)
	})

	t.Run("remote addr without port", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "192.0.2.4"

		meta := RequestMetaFromRequest(r)

		assert.Equal(t, "192.0.2.4", meta.IP)
	})

	t.Run("nil request", func(t *testing.T) {
		meta := RequestMetaFromRequest(nil)

		assert.Empty(t, meta.IP)
		assert.Empty(t, meta.UserAgent)
		assert.Equal(t, "unknown", meta.IPOrUnknown())
	})
}
