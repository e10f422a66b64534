// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. Kept in one place so the verifier and the hasher can
// never drift apart; changing any of them invalidates all stored hashes.
const (
	pbkdf2Iterations = 100_000
	pbkdf2KeyLen     = 64 // bytes
	saltLen          = 16 // bytes
)

// passwordHasher is the PBKDF2-SHA256 implementation of [PasswordHasher].
type passwordHasher struct{}

// NewPasswordHasher constructs a [PasswordHasher] using PBKDF2-SHA256 with
// 100 000 iterations and a 64-byte derived key.
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{}
}

// GenerateSalt implements [PasswordHasher]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (h *passwordHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Hash implements [PasswordHasher]. The derived key is hex-encoded for
// storage in a TEXT column.
func (h *passwordHasher) Hash(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// Verify implements [PasswordHasher]. The comparison uses hmac.Equal so it
// is constant-time with respect to the secret hash value.
func (h *passwordHasher) Verify(password string, salt []byte, storedHash string) bool {
	computed := h.Hash(password, salt)
	return hmac.Equal([]byte(computed), []byte(storedHash))
}

// GeneratePassword returns a cryptographically random password for seeded
// accounts: 16 hex characters from 8 random bytes. Returns an error if the
// random read fails.
func GeneratePassword() (string, error) {
	raw := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
