// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Mangateca HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the entity store selected by STORE_DRIVER (migrations or indexes included).
//  4. Connect to Redis when REDIS_URL is set.
//  5. Wire services, the reference guard and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/mangateca/internal/api"
	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/catalog/manga"
	"github.com/taibuivan/mangateca/internal/integrity"
	"github.com/taibuivan/mangateca/internal/library/favorite"
	"github.com/taibuivan/mangateca/internal/platform/config"
	"github.com/taibuivan/mangateca/internal/platform/constants"
	redisstore "github.com/taibuivan/mangateca/internal/platform/redis"
	"github.com/taibuivan/mangateca/internal/platform/sec"
	"github.com/taibuivan/mangateca/internal/social/evaluation"
	"github.com/taibuivan/mangateca/internal/users/account"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
		slog.String("reference_policy", cfg.ReferencePolicy),
		slog.Bool("require_auth_for_writes", cfg.RequireAuthForWrites),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Entity Store ───────────────────────────────────────────────────
	store, err := openStore(startupCtx, cfg, log)
	must(log, err, "open entity store")
	defer store.close()

	checks := []api.Check{store.check}

	// ── 4. Redis (optional session registry) ──────────────────────────────
	var sessions account.SessionStore
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		sessions = account.NewRedisSessionStore(rdb)
		checks = append(checks, api.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}})
	} else {
		log.Warn("redis_disabled_sessions_stateless")
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	favoriteService := favorite.NewService(store.favorites, log)
	evaluationService := evaluation.NewService(store.evaluations, log)

	// The guard counts through repositories so that the services it guards
	// can be built after it.
	guard := integrity.NewGuard(cfg.ReferencePolicy, integrity.Sources{
		Mangas:      store.mangas,
		Favorites:   store.accounts,
		Lists:       favoriteService,
		Evaluations: evaluationService,
	}, log)

	authorService := author.NewService(store.authors, guard, log)
	mangaService := manga.NewService(store.mangas, authorService, guard, log)
	accountService := account.NewService(store.accounts, sessions, tokens, guard, account.Options{
		TokenTTL:            cfg.AccessTokenTTL,
		LegacyPasswords:     cfg.LegacyPlaintextPasswords,
		BootstrapAdminEmail: cfg.BootstrapAdminEmail,
	}, log)

	catalogGuard := api.CatalogWriteGuard(cfg.RequireAuthForWrites)
	ownerGuard := api.OwnerWriteGuard(cfg.RequireAuthForWrites)
	liveness, readiness := api.NewHealthHandlers(checks, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, accountService, api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Mangas:      manga.NewHandler(mangaService, catalogGuard),
		Authors:     author.NewHandler(authorService, catalogGuard),
		Accounts:    account.NewHandler(accountService, ownerGuard),
		Favorites:   favorite.NewHandler(favoriteService, ownerGuard),
		Evaluations: evaluation.NewHandler(evaluationService, ownerGuard),
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger with the global app attribute and installs it as default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
