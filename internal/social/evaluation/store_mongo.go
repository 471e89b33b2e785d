// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package evaluation

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
	return &MongoRepository{collection: database.Collection(mongostore.CollectionEvaluations)}
}

func (repository *MongoRepository) ListEvaluations(ctx context.Context, filter Filter, limit, offset int) ([]*Evaluation, int, error) {
	document := bson.M{}
	if filter.MangaID != "" {
		document["mangaId"] = filter.MangaID
	}

	total, err := repository.collection.CountDocuments(ctx, document)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_evaluations")
	}

	cursor, err := repository.collection.Find(ctx, document, mongostore.Page(limit, offset, "timestamp", -1))
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_evaluations")
	}

	evaluations := []*Evaluation{}
	if err := cursor.All(ctx, &evaluations); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "decode_evaluations")
	}

	return evaluations, int(total), nil
}

func (repository *MongoRepository) GetEvaluation(ctx context.Context, id string) (*Evaluation, error) {
	evaluation := &Evaluation{}
	if err := repository.collection.FindOne(ctx, bson.M{"_id": id}).Decode(evaluation); err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_evaluation")
	}
	return evaluation, nil
}

func (repository *MongoRepository) CreateEvaluation(ctx context.Context, evaluation *Evaluation) error {
	_, err := repository.collection.InsertOne(ctx, evaluation)
	return dberr.Wrap(err, resourceName, "create_evaluation")
}

func (repository *MongoRepository) UpdateEvaluation(ctx context.Context, evaluation *Evaluation) error {
	result, err := repository.collection.ReplaceOne(ctx, bson.M{"_id": evaluation.ID}, evaluation)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_evaluation")
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *MongoRepository) DeleteEvaluation(ctx context.Context, id string) error {
	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_evaluation")
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *MongoRepository) Summarize(ctx context.Context, mangaID string) (*Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"mangaId": mangaID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"average": bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := repository.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "summarize_evaluations")
	}

	groups := []Summary{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, dberr.Wrap(err, resourceName, "decode_summary")
	}

	// No evaluations produce no group.
	summary := &Summary{MangaID: mangaID}
	if len(groups) > 0 {
		summary.Count = groups[0].Count
		summary.Average = groups[0].Average
	}
	return summary, nil
}

func (repository *MongoRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	count, err := repository.collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, dberr.Wrap(err, resourceName, "count_evaluations_by_user")
	}
	return int(count), nil
}
