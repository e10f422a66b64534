package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySession_GetSetHasRemove(t *testing.T) {
	s := NewMemorySession()

	assert.False(t, s.Has("auth_user_id"))
	assert.Equal(t, int64(0), s.Get("auth_user_id", int64(0)))

	s.Set("auth_user_id", int64(42))
	assert.True(t, s.Has("auth_user_id"))
	assert.Equal(t, int64(42), s.Get("auth_user_id", int64(0)))

	s.Remove("auth_user_id")
	assert.False(t, s.Has("auth_user_id"))
}

func TestMemorySession_GetReturnsDefault(t *testing.T) {
	s := NewMemorySession()
	assert.Equal(t, "fallback", s.Get("missing", "fallback"))
	assert.Nil(t, s.Get("missing", nil))
}

func TestMemorySession_InvalidateClearsStateAndRotatesID(t *testing.T) {
	s := NewMemorySession().(*memorySession)

	s.Set("auth_user_id", int64(7))
	s.Set("auth_username", "alice")
	before := s.ID()
	require.NotEmpty(t, before)

	s.Invalidate()

	assert.False(t, s.Has("auth_user_id"))
	assert.False(t, s.Has("auth_username"))
	assert.NotEqual(t, before, s.ID())
}

func TestMemorySession_ConcurrentAccess(t *testing.T) {
	s := NewMemorySession()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Set("k", n)
			_ = s.Get("k", 0)
			_ = s.Has("k")
		}(i)
	}
	wg.Wait()

	assert.True(t, s.Has("k"))
}
