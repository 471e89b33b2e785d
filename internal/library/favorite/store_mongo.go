// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

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
	return &MongoRepository{collection: database.Collection(mongostore.CollectionFavorites)}
}

func (repository *MongoRepository) ListFavoriteLists(ctx context.Context, filter Filter, limit, offset int) ([]*FavoriteList, int, error) {
	document := bson.M{}
	if filter.UserID != "" {
		document["userId"] = filter.UserID
	}

	total, err := repository.collection.CountDocuments(ctx, document)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_favorite_lists")
	}

	cursor, err := repository.collection.Find(ctx, document, mongostore.Page(limit, offset, "createdAt", -1))
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_favorite_lists")
	}

	lists := []*FavoriteList{}
	if err := cursor.All(ctx, &lists); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "decode_favorite_lists")
	}

	return lists, int(total), nil
}

func (repository *MongoRepository) GetFavoriteList(ctx context.Context, id string) (*FavoriteList, error) {
	list := &FavoriteList{}
	if err := repository.collection.FindOne(ctx, bson.M{"_id": id}).Decode(list); err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_favorite_list")
	}
	return list, nil
}

func (repository *MongoRepository) CreateFavoriteList(ctx context.Context, list *FavoriteList) error {
	_, err := repository.collection.InsertOne(ctx, list)
	return dberr.Wrap(err, resourceName, "create_favorite_list")
}

func (repository *MongoRepository) UpdateFavoriteList(ctx context.Context, list *FavoriteList) error {
	update := bson.M{"$set": bson.M{
		"userId":    list.UserID,
		"name":      list.Name,
		"mangas":    list.Mangas,
		"updatedAt": list.UpdatedAt,
	}}

	result, err := repository.collection.UpdateByID(ctx, list.ID, update)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_favorite_list")
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *MongoRepository) DeleteFavoriteList(ctx context.Context, id string) error {
	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_favorite_list")
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *MongoRepository) CountContaining(ctx context.Context, mangaID string) (int, error) {
	return repository.count(ctx, bson.M{"mangas": mangaID}, "count_lists_containing")
}

func (repository *MongoRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	return repository.count(ctx, bson.M{"userId": userID}, "count_lists_by_user")
}

func (repository *MongoRepository) count(ctx context.Context, filter bson.M, action string) (int, error) {
	count, err := repository.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, dberr.Wrap(err, resourceName, action)
	}
	return int(count), nil
}
