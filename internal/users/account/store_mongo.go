// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/dberr"
	mongostore "github.com/taibuivan/mangateca/internal/platform/mongo"
)

// MongoRepository relies on the unique email index created by
// [mongostore.EnsureIndexes] to turn registration races into conflicts.
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(mongostore.CollectionAccounts)}
}

func (repository *MongoRepository) GetAccount(ctx context.Context, id string) (*Account, error) {
	return repository.findOne(ctx, bson.M{"_id": id}, "get_account")
}

func (repository *MongoRepository) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	return repository.findOne(ctx, bson.M{"email": email}, "get_account_by_email")
}

func (repository *MongoRepository) findOne(ctx context.Context, filter bson.M, action string) (*Account, error) {
	account := &Account{}
	if err := repository.collection.FindOne(ctx, filter).Decode(account); err != nil {
		return nil, dberr.Wrap(err, resourceName, action)
	}
	return account, nil
}

func (repository *MongoRepository) CreateAccount(ctx context.Context, account *Account) error {
	_, err := repository.collection.InsertOne(ctx, account)
	return dberr.Wrap(err, resourceName, "create_account")
}

func (repository *MongoRepository) UpdateAccount(ctx context.Context, account *Account) error {
	update := bson.M{"$set": bson.M{
		"username":  account.Username,
		"email":     account.Email,
		"password":  account.Password,
		"role":      account.Role,
		"favorites": account.Favorites,
		"updatedAt": account.UpdatedAt,
	}}

	result, err := repository.collection.UpdateByID(ctx, account.ID, update)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_account")
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *MongoRepository) DeleteAccount(ctx context.Context, id string) error {
	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_account")
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *MongoRepository) CountFavoriting(ctx context.Context, mangaID string) (int, error) {
	count, err := repository.collection.CountDocuments(ctx, bson.M{"favorites": mangaID})
	if err != nil {
		return 0, dberr.Wrap(err, resourceName, "count_favoriting")
	}
	return int(count), nil
}
