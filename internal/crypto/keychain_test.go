package crypto

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeyChain_EnvBase64Key(t *testing.T) {
	raw := bytes.Repeat([]byte{0x11}, 32)
	t.Setenv(KeyEnvVar, base64.StdEncoding.EncodeToString(raw))

	kc := NewKeyChain(filepath.Join(t.TempDir(), ".project_key"))
	key, err := kc.Key()
	if err != nil {
		t.Fatalf("Key error: %v", err)
	}
	if !bytes.Equal(key, raw) {
		t.Fatalf("env base64 key not decoded to raw bytes")
	}
}

func TestKeyChain_EnvRawKey(t *testing.T) {
	// Not valid base64, so the value is taken as raw bytes. 33 chars keeps
	// it above the 32-byte minimum while exercising truncation to 32.
	raw := strings.Repeat("k", 32) + "!"
	t.Setenv(KeyEnvVar, raw)

	kc := NewKeyChain(filepath.Join(t.TempDir(), ".project_key"))
	key, err := kc.Key()
	if err != nil {
		t.Fatalf("Key error: %v", err)
	}
	if !bytes.Equal(key, []byte(raw)[:32]) {
		t.Fatalf("raw env key not used as-is")
	}
}

func TestKeyChain_EnvKeyTooShort(t *testing.T) {
	t.Setenv(KeyEnvVar, "way-too-short")

	kc := NewKeyChain(filepath.Join(t.TempDir(), ".project_key"))
	if _, err := kc.Key(); err == nil {
		t.Fatalf("expected error for undersized env key")
	}
}

func TestKeyChain_KeyFile(t *testing.T) {
	t.Setenv(KeyEnvVar, "") // make sure the environment never shadows the key file
	raw := bytes.Repeat([]byte{0x22}, 32)
	keyFile := filepath.Join(t.TempDir(), ".project_key")
	if err := os.WriteFile(keyFile, []byte(base64.StdEncoding.EncodeToString(raw)+"\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	kc := NewKeyChain(keyFile)
	key, err := kc.Key()
	if err != nil {
		t.Fatalf("Key error: %v", err)
	}
	if !bytes.Equal(key, raw) {
		t.Fatalf("key file not decoded to raw bytes")
	}
}

func TestKeyChain_EmptyKeyFileFatal(t *testing.T) {
	t.Setenv(KeyEnvVar, "") // make sure the environment never shadows the key file
	keyFile := filepath.Join(t.TempDir(), ".project_key")
	if err := os.WriteFile(keyFile, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	kc := NewKeyChain(keyFile)
	if _, err := kc.Key(); err == nil {
		t.Fatalf("expected error for empty key file")
	}
}

func TestKeyChain_GeneratesAndPersists(t *testing.T) {
	t.Setenv(KeyEnvVar, "") // make sure the environment never shadows the key file
	keyFile := filepath.Join(t.TempDir(), ".project_key")

	kc := NewKeyChain(keyFile)
	key, err := kc.Key()
	if err != nil {
		t.Fatalf("Key error: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("generated key length = %d, want 32", len(key))
	}

	info, err := os.Stat(keyFile)
	if err != nil {
		t.Fatalf("key file not persisted: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("key file permissions = %o, want 600", perm)
	}

	// A second keychain over the same file must load the identical key.
	again, err := NewKeyChain(keyFile).Key()
	if err != nil {
		t.Fatalf("Key error on reload: %v", err)
	}
	if !bytes.Equal(key, again) {
		t.Fatalf("persisted key differs from generated key")
	}
}

func TestKeyChain_ResolutionIsMemoized(t *testing.T) {
	t.Setenv(KeyEnvVar, "") // make sure the environment never shadows the key file
	keyFile := filepath.Join(t.TempDir(), ".project_key")

	kc := NewKeyChain(keyFile)
	first, err := kc.Key()
	if err != nil {
		t.Fatalf("Key error: %v", err)
	}

	// Deleting the persisted file must not affect later calls: the key is
	// cached for the process lifetime.
	if err := os.Remove(keyFile); err != nil {
		t.Fatalf("remove key file: %v", err)
	}

	second, err := kc.Key()
	if err != nil {
		t.Fatalf("Key error on second call: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("memoized key changed between calls")
	}
}
