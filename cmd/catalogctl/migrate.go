// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mangateca/internal/platform/migration"
)

func (a *app) migrateCommand() *cobra.Command {
	var databaseURL, path string

	command := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the PostgreSQL baseline schema",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(a.output); err != nil {
				return err
			}
			if databaseURL == "" {
				return errors.New("--database-url or DATABASE_URL is required")
			}
			return nil
		},
	}
	command.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL DSN (env DATABASE_URL)")
	command.PersistentFlags().StringVar(&path, "path", envOr("MIGRATION_PATH", "./data/migrations"), "migration directory (env MIGRATION_PATH)")

	runner := func() *migration.Runner {
		return migration.NewRunner(databaseURL, path, a.logger())
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runner().Up(); err != nil {
				return err
			}
			return a.printVersion(runner())
		},
	}

	down := &cobra.Command{
		Use:   "down <steps>",
		Short: "Roll back the given number of migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("steps must be a number: %w", err)
			}
			if err := runner().Down(steps); err != nil {
				return err
			}
			return a.printVersion(runner())
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Show the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printVersion(runner())
		},
	}

	command.AddCommand(up, down, version)
	return command
}

func (a *app) printVersion(runner *migration.Runner) error {
	status, err := runner.Version()
	if err != nil {
		return err
	}
	return a.print(status)
}
