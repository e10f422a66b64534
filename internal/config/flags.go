package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite file path or Postgres connection string)
//	-driver database driver name ("sqlite3" or "pgx")
//	-c/-config json file path with configs
//	-key-file master key file path
//	-max-failed max consecutive failed logins before lockout
//	-lock-duration account lock duration (e.g. "15m")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var keyFile string
	var maxFailedLogins int
	var lockDuration time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3 or pgx)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&keyFile, "key-file", "", "Master key file path")
	flag.IntVar(&maxFailedLogins, "max-failed", 0, "Max consecutive failed logins before lockout")
	flag.DurationVar(&lockDuration, "lock-duration", 0, "Account lock duration (e.g. 15m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			MaxFailedLogins: maxFailedLogins,
			LockDuration:    lockDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Vault: Vault{
			KeyFile: keyFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}
