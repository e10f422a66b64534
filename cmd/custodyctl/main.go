package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-secret-custody/internal/config"
	"github.com/MKhiriev/go-secret-custody/internal/crypto"
	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/internal/service"
	"github.com/MKhiriev/go-secret-custody/internal/session"
	"github.com/MKhiriev/go-secret-custody/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: custodyctl [global flags] <command> [command flags]

Commands:
  seed-admin                      bootstrap the first admin account
  user add|list|lock|unlock|protect|unprotect|must-change|set-password|delete
  project create|list|show|set-secret|delete
  db status                       show table counts

Global flags (before the command):
  -d <dsn>            database DSN
  -driver <name>      sqlite3 or pgx
  -c <path>           JSON config file
  -key-file <path>    master key file path
  -max-failed <n>     failed logins before lockout
  -lock-duration <d>  lockout duration, e.g. 15m
`

// app bundles everything a command handler needs.
type app struct {
	services *service.Services
	storages *store.Storages
	cfg      *config.StructuredConfig
	logger   *logger.Logger

	in  *bufio.Reader
	out io.Writer
}

func main() {
	printBuildInfo()

	log := logger.NewLogger("custodyctl")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	// Key resolution failure is fatal: the vault must never run without a
	// usable master key.
	key, err := crypto.NewKeyChain(cfg.Vault.KeyFile).Key()
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving master key")
	}
	codec, err := crypto.NewEnvelopeCodec(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating envelope codec")
	}

	services := service.NewServices(storages, session.NewMemorySession(), codec, *cfg, log)

	a := &app{
		services: services,
		storages: storages,
		cfg:      cfg,
		logger:   log,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	if err := a.run(ctx, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "custodyctl: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return nil
	}

	switch args[0] {
	case "seed-admin":
		return a.seedAdmin(ctx, args[1:])
	case "user":
		return a.userCommand(ctx, args[1:])
	case "project":
		return a.projectCommand(ctx, args[1:])
	case "db":
		return a.dbCommand(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) dbCommand(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "status" {
		return fmt.Errorf("usage: custodyctl db status")
	}

	users, err := a.storages.UserRepository.CountUsers(ctx)
	if err != nil {
		return err
	}
	projects, err := a.storages.ProjectRepository.CountProjects(ctx)
	if err != nil {
		return err
	}
	logins, err := a.storages.AuditRepository.CountLoginAttempts(ctx)
	if err != nil {
		return err
	}
	audits, err := a.storages.AuditRepository.CountProjectAudits(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "users:          %d\n", users)
	fmt.Fprintf(a.out, "projects:       %d\n", projects)
	fmt.Fprintf(a.out, "login attempts: %d\n", logins)
	fmt.Fprintf(a.out, "project audits: %d\n", audits)
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
