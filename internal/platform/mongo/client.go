// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mongo provides the managed MongoDB client backing the document entity store.

It mirrors the postgres package: connect, ping, and hand a database handle to
the per-entity repositories. Documents use the same string UUIDv7 ids as the
relational store, stored under '_id'.
*/
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client settings.
const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
	maxPoolSize    = 20
)

// Collection names.
const (
	CollectionAuthors      = "authors"
	CollectionMangas       = "mangas"
	CollectionAccounts     = "accounts"
	CollectionFavorites    = "favoritelists"
	CollectionEvaluations  = "evaluations"
	indexAccountEmailField = "email"
)

// NewClient connects to MongoDB and validates the connection.
func NewClient(ctx context.Context, uri string, logger *slog.Logger) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to connect: %w", err)
	}

	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongo_client_connected", slog.Int("max_pool_size", maxPoolSize))

	return client, nil
}

// Ping verifies that the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: ping failed: %w", err)
	}

	return nil
}

// EnsureIndexes creates the indexes the services rely on. It is idempotent.
//
// The unique email index closes the window between the registration
// uniqueness check and the insert.
func EnsureIndexes(ctx context.Context, database *mongo.Database, logger *slog.Logger) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionAccounts: {
			{Keys: bson.D{{Key: indexAccountEmailField, Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionMangas: {
			{Keys: bson.D{{Key: "authorId", Value: 1}}},
		},
		CollectionFavorites: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		CollectionEvaluations: {
			{Keys: bson.D{{Key: "mangaId", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		names, err := database.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("mongo: failed to create indexes on %s: %w", collection, err)
		}
		logger.Debug("mongo_indexes_ensured", slog.String("collection", collection), slog.Any("indexes", names))
	}

	return nil
}

// Page converts limit/offset into find options sorted by the given field.
func Page(limit, offset int, sortField string, direction int) *options.FindOptions {
	return options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: sortField, Value: direction}, {Key: "_id", Value: 1}})
}
