// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration wraps golang-migrate for the relational entity store.
//
// The API applies pending migrations at startup when STORE_DRIVER=postgres.
// The catalogctl tool exposes the same runner for manual up, down and version
// checks.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers the "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Runner applies the SQL files under a directory to one database.
type Runner struct {
	sourceURL   string
	databaseURL string
	logger      *slog.Logger
}

// Status describes the schema version recorded in the database.
type Status struct {
	Version uint `json:"version"`
	Dirty   bool `json:"dirty"`
}

// NewRunner prepares a runner. No connection is opened until a command runs.
func NewRunner(dsn, migrationsPath string, logger *slog.Logger) *Runner {
	return &Runner{
		sourceURL:   "file://" + migrationsPath,
		databaseURL: ToPgx5DSN(dsn),
		logger:      logger,
	}
}

// Up applies all pending migrations. An up-to-date schema is not an error.
func (r *Runner) Up() error {
	return r.run(func(migrator *migrate.Migrate) error {
		from, _ := r.version(migrator)
		if err := migrator.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				r.logger.Info("migration_already_up_to_date", slog.Int("version", int(from.Version)))
				return nil
			}
			return fmt.Errorf("migration: up failed: %w", err)
		}

		to, _ := r.version(migrator)
		r.logger.Info("migration_successful",
			slog.Int("from_version", int(from.Version)),
			slog.Int("to_version", int(to.Version)),
		)
		return nil
	})
}

// Down rolls back the given number of migrations.
func (r *Runner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("migration: steps must be positive, got %d", steps)
	}

	return r.run(func(migrator *migrate.Migrate) error {
		if err := migrator.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration: down failed: %w", err)
		}
		r.logger.Info("migration_rolled_back", slog.Int("steps", steps))
		return nil
	})
}

// Version reports the current schema version.
func (r *Runner) Version() (Status, error) {
	var status Status
	err := r.run(func(migrator *migrate.Migrate) error {
		var err error
		status, err = r.version(migrator)
		return err
	})
	return status, err
}

func (r *Runner) run(command func(*migrate.Migrate) error) error {
	migrator, err := migrate.New(r.sourceURL, r.databaseURL)
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceErr, dbErr := migrator.Close()
		if sourceErr != nil {
			r.logger.Error("migration_source_close_failed", slog.Any("error", sourceErr))
		}
		if dbErr != nil {
			r.logger.Error("migration_db_close_failed", slog.Any("error", dbErr))
		}
	}()

	migrator.Log = &migrateLogger{logger: r.logger}

	status, err := r.version(migrator)
	if err != nil {
		return err
	}
	if status.Dirty {
		return fmt.Errorf("migration: database is dirty at version %d (manual intervention required)", status.Version)
	}

	return command(migrator)
}

func (r *Runner) version(migrator *migrate.Migrate) (Status, error) {
	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, fmt.Errorf("migration: failed to get current version: %w", err)
	}
	return Status{Version: version, Dirty: dirty}, nil
}

// ToPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// the golang-migrate driver registers.
func ToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger *slog.Logger
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
