// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel
// error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "sqlite3" && cfg.Storage.DB.Driver != "pgx" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.MaxFailedLogins < 1 || cfg.App.LockDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Vault.KeyFile == "" {
		return ErrInvalidVaultConfigs
	}

	return nil
}
