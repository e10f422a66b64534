package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dario.cat/mergo"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_MAX_FAILED_LOGINS", "3")
	t.Setenv("APP_LOCK_DURATION", "10m")
	t.Setenv("STORAGE_DB_DRIVER", "pgx")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/custody")
	t.Setenv("VAULT_KEY_FILE", "/tmp/.project_key")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 3, cfg.App.MaxFailedLogins)
	assert.Equal(t, 10*time.Minute, cfg.App.LockDuration)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/custody", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/.project_key", cfg.Vault.KeyFile)
}

func TestParseJSON_PopulatesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"max_failed_logins": 7, "lock_duration": "30m"},
		"storage": {"db": {"driver": "sqlite3", "dsn": "data/test.db"}},
		"vault": {"key_file": "data/.key"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.App.MaxFailedLogins)
	assert.Equal(t, 30*time.Minute, cfg.App.LockDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "data/test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "data/.key", cfg.Vault.KeyFile)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestDefaults_MergedLast(t *testing.T) {
	// A partially populated config merged with defaults keeps its own
	// values and gains defaults only for empty fields.
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/custody"}},
	}
	require.NoError(t, mergo.Merge(cfg, defaults()))

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/custody", cfg.Storage.DB.DSN)
	assert.Equal(t, 5, cfg.App.MaxFailedLogins)
	assert.Equal(t, 15*time.Minute, cfg.App.LockDuration)
	assert.Equal(t, "data/.project_key", cfg.Vault.KeyFile)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "success: defaults are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "error: unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "error: empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "error: zero attempt limit",
			mutate:  func(cfg *StructuredConfig) { cfg.App.MaxFailedLogins = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "error: non-positive lock duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LockDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "error: empty key file",
			mutate:  func(cfg *StructuredConfig) { cfg.Vault.KeyFile = "" },
			wantErr: ErrInvalidVaultConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
