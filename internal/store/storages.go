package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-custody/internal/config"
	"github.com/MKhiriev/go-secret-custody/internal/logger"
)

// Storages aggregates every repository over one database connection.
type Storages struct {
	DB                *DB
	UserRepository    UserRepository
	ProjectRepository ProjectRepository
	AuditRepository   AuditRepository
}

// NewStorages connects to the configured backend, applies migrations, and
// wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, log),
		ProjectRepository: NewProjectRepository(db, log),
		AuditRepository:   NewAuditRepository(db, log),
	}, nil
}
