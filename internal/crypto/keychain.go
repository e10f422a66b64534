// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// KeyEnvVar is the environment variable consulted first when resolving the
// master key. Its value may be base64 or raw key bytes.
const KeyEnvVar = "PROJECT_DATA_KEY"

// masterKeyLen is the size of the AES-256 master key.
const masterKeyLen = 32

// KeyChain resolves and caches the process-wide master key used for all
// envelope encryption. Resolution order:
//
//  1. the PROJECT_DATA_KEY environment variable;
//  2. the configured key file;
//  3. a freshly generated key, persisted to the key file with owner-only
//     permissions.
//
// The key is resolved at most once per process; concurrent callers observe
// the first result. There is no rotation: replacing the key silently makes
// every previously stored envelope undecryptable, which is why generation
// persists the key immediately and atomically.
type KeyChain struct {
	keyFile string

	once sync.Once
	key  []byte
	err  error
}

// NewKeyChain constructs a KeyChain that persists a generated key to
// keyFile. The key is not resolved until the first call to [KeyChain.Key].
func NewKeyChain(keyFile string) *KeyChain {
	return &KeyChain{keyFile: keyFile}
}

// Key returns the resolved 32-byte master key. The first call performs the
// resolution; every later call returns the cached result. A resolution
// failure is terminal for the process lifetime — the vault must not operate
// without a key.
func (k *KeyChain) Key() ([]byte, error) {
	k.once.Do(func() {
		k.key, k.err = k.resolve()
	})
	return k.key, k.err
}

func (k *KeyChain) resolve() ([]byte, error) {
	if raw, ok := os.LookupEnv(KeyEnvVar); ok && raw != "" {
		key, err := keyMaterial(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeyEnvVar, err)
		}
		return key, nil
	}

	if key, err := k.loadKeyFile(); err != nil {
		return nil, err
	} else if key != nil {
		return key, nil
	}

	return k.generateAndPersist()
}

// loadKeyFile reads the key file if it exists. A missing file is not an
// error (nil, nil); an unreadable or undersized file is.
func (k *KeyChain) loadKeyFile() ([]byte, error) {
	raw, err := os.ReadFile(k.keyFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, fmt.Errorf("key file %s is empty", k.keyFile)
	}

	key, kmErr := keyMaterial(trimmed)
	if kmErr != nil {
		return nil, fmt.Errorf("key file %s: %w", k.keyFile, kmErr)
	}
	return key, nil
}

// generateAndPersist creates a fresh 32-byte key and writes it base64-encoded
// to the key file. The write goes through a temp file followed by a rename so
// a crash mid-write can never leave a half-written key behind.
func (k *KeyChain) generateAndPersist() ([]byte, error) {
	key := make([]byte, masterKeyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	dir := filepath.Dir(k.keyFile)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create key dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".project_key-*")
	if err != nil {
		return nil, fmt.Errorf("create temp key file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(base64.StdEncoding.EncodeToString(key)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, fmt.Errorf("write key file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, fmt.Errorf("chmod key file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("close key file: %w", err)
	}

	if err := os.Rename(tmpName, k.keyFile); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("persist key file: %w", err)
	}

	return key, nil
}

// keyMaterial turns a configured key string into the 32-byte master key.
// The string is base64-decoded when it decodes cleanly, otherwise used as
// raw bytes; at least 32 bytes of material are required and only the first
// 32 are used.
func keyMaterial(s string) ([]byte, error) {
	material := []byte(s)
	if decoded, err := base64.StdEncoding.DecodeString(s); err == nil {
		material = decoded
	}

	if len(material) < masterKeyLen {
		return nil, fmt.Errorf("key material too short: need at least %d bytes, got %d", masterKeyLen, len(material))
	}

	return material[:masterKeyLen], nil
}
