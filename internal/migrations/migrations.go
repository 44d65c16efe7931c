package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"feedwatch/internal/logger"
)

//go:embed *.sql
var migrationsFS embed.FS

// Run applies all pending migrations to the given database.
func Run(db *sql.DB) error {
	d, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("create migrations source: %w", err)
	}
	instance, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite migration instance: %w", err)
	}
	migrator, err := migrate.NewWithInstance("iofs", d, "sqlite", instance)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Debug("migrations applied", "module", "db", "action", "migrate", "resource", "schema", "result", "ok")
	return nil
}
