// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package evaluation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/social/evaluation"
)

const evaluationsNamespace = "mangateca.evaluations"

func TestMongoRepository_Summarize(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no_evaluations", func(mt *mtest.T) {
		repository := evaluation.NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, evaluationsNamespace, mtest.FirstBatch))

		summary, err := repository.Summarize(context.Background(), "m1")
		require.NoError(mt, err)
		assert.Equal(mt, &evaluation.Summary{MangaID: "m1"}, summary)
	})

	mt.Run("grouped", func(mt *mtest.T) {
		repository := evaluation.NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, evaluationsNamespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: nil}, {Key: "count", Value: 2}, {Key: "average", Value: 4.5}},
		))

		summary, err := repository.Summarize(context.Background(), "m1")
		require.NoError(mt, err)
		assert.Equal(mt, "m1", summary.MangaID)
		assert.Equal(mt, 2, summary.Count)
		assert.InDelta(mt, 4.5, summary.Average, 1e-9)
	})
}

func TestMongoRepository_ListFiltersByManga(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filter_and_window", func(mt *mtest.T) {
		repository := evaluation.NewMongoRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, evaluationsNamespace, mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			mtest.CreateCursorResponse(0, evaluationsNamespace, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "e1"}, {Key: "mangaId", Value: "m1"}, {Key: "rating", Value: 5}},
			),
		)

		evaluations, total, err := repository.ListEvaluations(context.Background(), evaluation.Filter{MangaID: "m1"}, 10, 20)
		require.NoError(mt, err)
		assert.Equal(mt, 1, total)
		require.Len(mt, evaluations, 1)
		assert.Equal(mt, 5, evaluations[0].Rating)

		find := mt.GetStartedEvent()
		for find != nil && find.CommandName != "find" {
			find = mt.GetStartedEvent()
		}
		require.NotNil(mt, find)
		assert.Equal(mt, "m1", find.Command.Lookup("filter", "mangaId").StringValue())
		assert.Equal(mt, int64(20), find.Command.Lookup("skip").AsInt64())
		assert.Equal(mt, int64(10), find.Command.Lookup("limit").AsInt64())
	})
}

func TestMongoRepository_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get", func(mt *mtest.T) {
		repository := evaluation.NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, evaluationsNamespace, mtest.FirstBatch))

		_, err := repository.GetEvaluation(context.Background(), "missing")
		assert.True(mt, apperr.IsNotFound(err))
	})

	mt.Run("update", func(mt *mtest.T) {
		repository := evaluation.NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repository.UpdateEvaluation(context.Background(), &evaluation.Evaluation{ID: "missing"})
		assert.True(mt, apperr.IsNotFound(err))
	})

	mt.Run("delete", func(mt *mtest.T) {
		repository := evaluation.NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repository.DeleteEvaluation(context.Background(), "missing")
		assert.True(mt, apperr.IsNotFound(err))
	})
}
