// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-custody/internal/crypto"
	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/internal/store"
	"github.com/MKhiriev/go-secret-custody/models"
)

// secretVault is the concrete implementation of SecretVault. Every read of
// a single project and every mutation runs through authorize, so a caller
// that is neither the owner nor an admin gets a uniform ErrForbidden.
type secretVault struct {
	// projectRepository is the data-access layer for project rows.
	projectRepository store.ProjectRepository

	// codec seals and opens the ciphertext envelopes stored per project.
	codec crypto.EnvelopeCodec

	// audit is the append-only sink for project lifecycle events.
	audit AuditLog

	logger *logger.Logger

	// now is stubbed in tests.
	now func() time.Time
}

// NewSecretVault constructs a SecretVault wired to the given repository,
// envelope codec and audit sink.
func NewSecretVault(projectRepository store.ProjectRepository, codec crypto.EnvelopeCodec, audit AuditLog, logger *logger.Logger) SecretVault {
	return &secretVault{
		projectRepository: projectRepository,
		codec:             codec,
		audit:             audit,
		logger:            logger,
		now:               time.Now,
	}
}

// authorize admits the owner of the project and any admin.
func authorize(principal models.Principal, project models.Project) error {
	if principal.Zero() {
		return ErrNotAuthenticated
	}
	if principal.IsAdmin() || principal.Username == project.Owner {
		return nil
	}
	return ErrForbidden
}

func (v *secretVault) CreateProject(ctx context.Context, principal models.Principal, name, slug string, metadata map[string]any, secret string, meta models.RequestMeta) (models.Project, error) {
	log := logger.FromContext(ctx)

	if principal.Zero() {
		return models.Project{}, ErrNotAuthenticated
	}
	if !models.ValidSlug(slug) {
		return models.Project{}, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	envelope := ""
	if secret != "" {
		sealed, err := v.codec.Encrypt(secret)
		if err != nil {
			return models.Project{}, fmt.Errorf("sealing project secret failed: %w", err)
		}
		envelope = sealed
	}

	now := v.now()
	created, err := v.projectRepository.CreateProject(ctx, models.Project{
		Slug:       slug,
		Name:       name,
		Owner:      principal.Username,
		Metadata:   metadata,
		SecretData: envelope,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	v.audit.ProjectEvent(ctx, created.ID, models.AuditActionCreate, principal.Username,
		fmt.Sprintf("project %q (%s) created from %s", created.Slug, created.Name, meta.IPOrUnknown()))

	return created, nil
}

func (v *secretVault) ProjectByID(ctx context.Context, principal models.Principal, id int64, decrypt bool) (models.Project, error) {
	log := logger.FromContext(ctx)

	project, err := v.projectRepository.FindProjectByID(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	if err := authorize(principal, project); err != nil {
		return models.Project{}, err
	}

	if decrypt && project.HasSecret() {
		plaintext, ok := v.codec.Decrypt(project.SecretData)
		if !ok {
			// Tampered or malformed envelope. The caller sees no secret;
			// the log is the only place this is distinguishable from an
			// absent one.
			log.Warn().Int64("project_id", project.ID).Msg("stored envelope failed authentication, returning no secret")
		}
		project.SecretData = plaintext
	}

	return project, nil
}

func (v *secretVault) ListProjects(ctx context.Context, principal models.Principal, all bool) ([]models.Project, error) {
	if principal.Zero() {
		return nil, ErrNotAuthenticated
	}

	if all {
		if !principal.IsAdmin() {
			return nil, ErrForbidden
		}
		return v.projectRepository.ListProjects(ctx)
	}
	return v.projectRepository.ListProjectsByOwner(ctx, principal.Username)
}

func (v *secretVault) UpdateProjectSecret(ctx context.Context, principal models.Principal, id int64, newSecret string, meta models.RequestMeta) error {
	log := logger.FromContext(ctx)

	if newSecret == "" {
		return ErrInvalidDataProvided
	}

	project, err := v.projectRepository.FindProjectByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(principal, project); err != nil {
		return err
	}

	envelope, err := v.codec.Encrypt(newSecret)
	if err != nil {
		return fmt.Errorf("sealing project secret failed: %w", err)
	}

	if err := v.projectRepository.UpdateProjectSecret(ctx, project.ID, envelope, v.now()); err != nil {
		log.Err(err).Int64("project_id", project.ID).Msg("project secret update ended with error")
		return fmt.Errorf("project secret update ended with error: %w", err)
	}

	v.audit.ProjectEvent(ctx, project.ID, models.AuditActionUpdateSecret, principal.Username,
		fmt.Sprintf("secret of project %q updated from %s", project.Slug, meta.IPOrUnknown()))

	return nil
}

func (v *secretVault) DeleteProject(ctx context.Context, principal models.Principal, id int64, meta models.RequestMeta) error {
	log := logger.FromContext(ctx)

	project, err := v.projectRepository.FindProjectByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(principal, project); err != nil {
		return err
	}

	if err := v.projectRepository.DeleteProject(ctx, project.ID); err != nil {
		log.Err(err).Int64("project_id", project.ID).Msg("project deletion ended with error")
		return fmt.Errorf("project deletion ended with error: %w", err)
	}

	v.audit.ProjectEvent(ctx, project.ID, models.AuditActionDelete, principal.Username,
		fmt.Sprintf("project %q deleted from %s", project.Slug, meta.IPOrUnknown()))

	return nil
}
