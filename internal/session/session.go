// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session defines the session collaborator consumed by the
// credential store and provides an in-memory implementation.
//
// The core stores only the authenticated user id and username in the
// session; secrets never enter session state. Production deployments are
// expected to substitute their own implementation (cookie store, Redis,
// framework session) behind the same interface.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the key-value session abstraction the credential store writes
// its authentication state into.
type Session interface {
	// Get returns the value stored under key, or def when absent.
	Get(key string, def any) any

	// Set stores value under key.
	Set(key string, value any)

	// Has reports whether key is present.
	Has(key string) bool

	// Remove deletes key from the session.
	Remove(key string)

	// Invalidate drops all session state and rotates the session identifier.
	Invalidate()
}

// memorySession is a mutex-guarded in-process Session.
type memorySession struct {
	mu     sync.RWMutex
	id     string
	values map[string]any
}

// NewMemorySession constructs an empty in-memory Session with a fresh
// random identifier.
func NewMemorySession() Session {
	return &memorySession{
		id:     uuid.NewString(),
		values: make(map[string]any),
	}
}

func (s *memorySession) Get(key string, def any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

func (s *memorySession) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

func (s *memorySession) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.values[key]
	return ok
}

func (s *memorySession) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
}

func (s *memorySession) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]any)
	s.id = uuid.NewString() // rotate the identifier on invalidation
}

// ID returns the current session identifier. Exposed for logging and
// debugging; the core itself never keys on it.
func (s *memorySession) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.id
}
