package service

import (
	"github.com/MKhiriev/go-secret-custody/internal/config"
	"github.com/MKhiriev/go-secret-custody/internal/crypto"
	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/internal/session"
	"github.com/MKhiriev/go-secret-custody/internal/store"
)

type Services struct {
	CredentialStore CredentialStore
	SecretVault     SecretVault
	AuditLog        AuditLog
}

// NewServices wires the credential store and the vault over one set of
// storages, sharing a single audit sink. The envelope codec must already
// carry the resolved master key; key resolution failures are fatal before
// this point.
func NewServices(storages *store.Storages, sess session.Session, codec crypto.EnvelopeCodec, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	audit := NewAuditLog(storages.AuditRepository, logger)

	return &Services{
		CredentialStore: NewCredentialStore(storages.UserRepository, crypto.NewPasswordHasher(), sess, audit, cfg.App, logger),
		SecretVault:     NewSecretVault(storages.ProjectRepository, codec, audit, logger),
		AuditLog:        audit,
	}
}
