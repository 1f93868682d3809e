package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrationSources maps a DB_DRIVER value to its migration directory.
var migrationSources = map[string]string{
	"postgres": "file://migrations/postgresql",
	"mysql":    "file://migrations/mysql",
}

func migrationSource(driver string) (string, error) {
	source, ok := migrationSources[driver]
	if !ok {
		return "", fmt.Errorf("unsupported database driver: %s (valid options: postgres, mysql)", driver)
	}
	return source, nil
}

// RunMigrations applies every pending campus table migration for driver.
// ErrNoChange is not an error.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	source, err := migrationSource(driver)
	if err != nil {
		return err
	}

	logger.Info("running database migrations", slog.String("driver", driver), slog.String("source", source))

	m, err := migrate.New(source, connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("migrations completed", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}
