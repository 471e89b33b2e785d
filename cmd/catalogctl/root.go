// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mangateca/internal/client"
	"github.com/taibuivan/mangateca/internal/platform/constants"
)

// app holds the global flags and the lazily built API client.
type app struct {
	apiURL  string
	token   string
	output  string
	timeout time.Duration
	debug   bool

	stdout io.Writer
	stderr io.Writer
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Browse and edit the Mangateca catalog",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOutput(a.output)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", envOr("MANGATECA_API_URL", "http://localhost:8080"), "API base URL (env MANGATECA_API_URL)")
	flags.StringVar(&a.token, "token", os.Getenv("MANGATECA_TOKEN"), "session token (env MANGATECA_TOKEN)")
	flags.StringVarP(&a.output, "output", "o", formatJSON, "output format: json or yaml")
	flags.DurationVar(&a.timeout, "timeout", 10*time.Second, "per-request timeout")
	flags.BoolVar(&a.debug, "debug", false, "log every API call to stderr")

	root.AddCommand(
		a.mangaCommand(),
		a.authorCommand(),
		a.accountCommand(),
		a.favoritesCommand(),
		a.evaluationsCommand(),
		a.migrateCommand(),
	)
	return root
}

func (a *app) logger() *slog.Logger {
	level := slog.LevelWarn
	if a.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

func (a *app) client() *client.Client {
	return client.New(a.apiURL, a.logger(), client.WithTimeout(a.timeout), client.WithToken(a.token))
}

func (a *app) resolver() *client.Resolver {
	return client.NewResolver(a.client(), a.logger())
}

func (a *app) print(value any) error {
	return render(a.stdout, a.output, value)
}
