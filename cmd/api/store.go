// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/mangateca/internal/api"
	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/catalog/manga"
	"github.com/taibuivan/mangateca/internal/library/favorite"
	"github.com/taibuivan/mangateca/internal/platform/config"
	"github.com/taibuivan/mangateca/internal/platform/migration"
	mongostore "github.com/taibuivan/mangateca/internal/platform/mongo"
	pgstore "github.com/taibuivan/mangateca/internal/platform/postgres"
	"github.com/taibuivan/mangateca/internal/social/evaluation"
	"github.com/taibuivan/mangateca/internal/users/account"
)

// entityStore holds the five repositories of the selected backend.
type entityStore struct {
	authors     author.Repository
	mangas      manga.Repository
	accounts    account.Repository
	favorites   favorite.Repository
	evaluations evaluation.Repository

	check api.Check
	close func()
}

// openStore connects the backend named by STORE_DRIVER and prepares its schema.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*entityStore, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverMongo:
		return openMongo(ctx, cfg, log)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func openPostgres(ctx context.Context, cfg *config.Config, log *slog.Logger) (*entityStore, error) {
	if err := migration.NewRunner(cfg.DatabaseURL, cfg.MigrationPath, log).Up(); err != nil {
		return nil, err
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	return &entityStore{
		authors:     author.NewPostgresRepository(pool),
		mangas:      manga.NewPostgresRepository(pool),
		accounts:    account.NewPostgresRepository(pool),
		favorites:   favorite.NewPostgresRepository(pool),
		evaluations: evaluation.NewPostgresRepository(pool),
		check: api.Check{Name: config.DriverPostgres, Ping: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		}},
		close: func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		},
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config, log *slog.Logger) (*entityStore, error) {
	client, err := mongostore.NewClient(ctx, cfg.MongoURI, log)
	if err != nil {
		return nil, err
	}

	database := client.Database(cfg.MongoDatabase)
	if err := mongostore.EnsureIndexes(ctx, database, log); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &entityStore{
		authors:     author.NewMongoRepository(database),
		mangas:      manga.NewMongoRepository(database),
		accounts:    account.NewMongoRepository(database),
		favorites:   favorite.NewMongoRepository(database),
		evaluations: evaluation.NewMongoRepository(database),
		check: api.Check{Name: config.DriverMongo, Ping: func(ctx context.Context) error {
			return mongostore.Ping(ctx, client)
		}},
		close: func() {
			log.Info("closing_mongo_client")
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("mongo_disconnect_error", slog.Any("error", err))
			}
		},
	}, nil
}
