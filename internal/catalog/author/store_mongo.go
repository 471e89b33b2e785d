// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

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
	return &MongoRepository{collection: database.Collection(mongostore.CollectionAuthors)}
}

func (repository *MongoRepository) ListAuthors(ctx context.Context, limit, offset int) ([]*Author, int, error) {
	total, err := repository.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_authors")
	}

	cursor, err := repository.collection.Find(ctx, bson.D{}, mongostore.Page(limit, offset, "name", 1))
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_authors")
	}

	authors := []*Author{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "decode_authors")
	}

	return authors, int(total), nil
}

func (repository *MongoRepository) GetAuthor(ctx context.Context, id string) (*Author, error) {
	author := &Author{}
	if err := repository.collection.FindOne(ctx, bson.M{"_id": id}).Decode(author); err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_author")
	}
	return author, nil
}

func (repository *MongoRepository) CreateAuthor(ctx context.Context, author *Author) error {
	_, err := repository.collection.InsertOne(ctx, author)
	return dberr.Wrap(err, resourceName, "create_author")
}

// UpdateAuthor replaces the whole document, keeping the stored createdAt.
func (repository *MongoRepository) UpdateAuthor(ctx context.Context, author *Author) error {
	existing, err := repository.GetAuthor(ctx, author.ID)
	if err != nil {
		return err
	}
	author.CreatedAt = existing.CreatedAt

	result, err := repository.collection.ReplaceOne(ctx, bson.M{"_id": author.ID}, author)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_author")
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *MongoRepository) DeleteAuthor(ctx context.Context, id string) error {
	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_author")
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}
