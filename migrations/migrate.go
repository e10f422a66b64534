package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given driver ("sqlite3" or
// "pgx"). The SQL is dialect-specific, so each backend has its own embedded
// directory; both define the same logical schema.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	var dir string
	switch driver {
	case "sqlite3":
		dir = "sqlite"
	case "pgx":
		dir = "postgres"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error selecting dialect dir: %w", err)
	}
	goose.SetBaseFS(sub)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
