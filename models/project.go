package models

import (
	"regexp"
	"time"
)

// slugPattern restricts slugs to lowercase letters, digits, dashes and
// underscores, between 3 and 64 characters.
var slugPattern = regexp.MustCompile(`^[a-z0-9-_]{3,64}$`)

// ValidSlug reports whether slug satisfies the project slug pattern.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// Project represents per-tenant metadata plus an optional encrypted secret.
// The secret is stored as a self-describing ciphertext envelope produced by
// the vault's own encryption routine; raw external ciphertext is never
// accepted.
type Project struct {
	// ID is the internal unique identifier of the project.
	ID int64 `json:"id"`

	// Slug is the globally unique, immutable project identifier.
	// Pattern: [a-z0-9-_]{3,64}.
	Slug string `json:"slug"`

	// Name is the human-readable project name.
	Name string `json:"name"`

	// Owner is the username of the principal that created the project.
	// Fixed at creation time.
	Owner string `json:"owner"`

	// Metadata is an arbitrary structured document attached to the project,
	// persisted as JSON.
	Metadata map[string]any `json:"metadata,omitempty"`

	// SecretData holds the ciphertext envelope when a secret is stored, or
	// the decrypted plaintext when a read explicitly requested decryption.
	// Empty when the project has no secret. Always stripped from list
	// results.
	SecretData string `json:"secret_data,omitempty"`

	// CreatedAt is the timestamp when the project was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last secret update.
	UpdatedAt time.Time `json:"updated_at"`
}

// HasSecret reports whether the project currently stores a secret.
func (p Project) HasSecret() bool {
	return p.SecretData != ""
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}
