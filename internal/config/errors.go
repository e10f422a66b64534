package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unknown driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates an invalid lockout policy
	// (for example, a zero attempt limit or non-positive lock duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidVaultConfigs indicates invalid vault key-management settings
	// (for example, an empty key file path).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
)
