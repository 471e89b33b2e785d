// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manga

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/dberr"
	mongostore "github.com/taibuivan/mangateca/internal/platform/mongo"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(mongostore.CollectionMangas)}
}

func filterDocument(filter Filter) bson.M {
	document := bson.M{}
	if filter.AuthorID != "" {
		document["authorId"] = filter.AuthorID
	}
	return document
}

func (repository *MongoRepository) ListMangas(ctx context.Context, filter Filter, limit, offset int) ([]*Manga, int, error) {
	document := filterDocument(filter)

	total, err := repository.collection.CountDocuments(ctx, document)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_mangas")
	}

	cursor, err := repository.collection.Find(ctx, document, mongostore.Page(limit, offset, "title", 1))
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_mangas")
	}

	mangas := []*Manga{}
	if err := cursor.All(ctx, &mangas); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "decode_mangas")
	}

	return mangas, int(total), nil
}

func (repository *MongoRepository) GetManga(ctx context.Context, id string) (*Manga, error) {
	manga := &Manga{}
	if err := repository.collection.FindOne(ctx, bson.M{"_id": id}).Decode(manga); err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_manga")
	}
	return manga, nil
}

func (repository *MongoRepository) CreateManga(ctx context.Context, manga *Manga) error {
	_, err := repository.collection.InsertOne(ctx, manga)
	return dberr.Wrap(err, resourceName, "create_manga")
}

// UpdateManga replaces the whole document, keeping the stored createdAt.
func (repository *MongoRepository) UpdateManga(ctx context.Context, manga *Manga) error {
	existing, err := repository.GetManga(ctx, manga.ID)
	if err != nil {
		return err
	}
	manga.CreatedAt = existing.CreatedAt

	result, err := repository.collection.ReplaceOne(ctx, bson.M{"_id": manga.ID}, manga)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_manga")
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *MongoRepository) DeleteManga(ctx context.Context, id string) error {
	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_manga")
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *MongoRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	count, err := repository.collection.CountDocuments(ctx, bson.M{"authorId": authorID})
	if err != nil {
		return 0, dberr.Wrap(err, resourceName, "count_mangas_by_author")
	}
	return int(count), nil
}
