// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package evaluation_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/ctxutil"
	"github.com/taibuivan/mangateca/internal/platform/sec"
	"github.com/taibuivan/mangateca/internal/social/evaluation"
)

const (
	userID       = "01890a5d-ac96-774b-bcce-b302099a8001"
	otherUserID  = "01890a5d-ac96-774b-bcce-b302099a8002"
	mangaID      = "01890a5d-ac96-774b-bcce-b302099a8057"
	otherMangaID = "01890a5d-ac96-774b-bcce-b302099a8058"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func sessionOf(id string) context.Context {
	return ctxutil.WithSession(context.Background(), &sec.AuthClaims{UserID: id, Role: string(sec.RoleUser)})
}

func newService() *evaluation.Service {
	return evaluation.NewService(newMemoryRepository(), discardLogger)
}

func TestService_ListByMangaWithoutEvaluations(t *testing.T) {
	evaluations, total, err := newService().ListByManga(context.Background(), mangaID, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, evaluations)
	assert.Empty(t, evaluations)
}

func TestService_CreateAndSummarize(t *testing.T) {
	ctx := context.Background()
	service := newService()

	for _, rating := range []int{5, 4} {
		created, err := service.CreateEvaluation(ctx, evaluation.Input{MangaID: mangaID, UserID: userID, Rating: rating, Comment: " Great "})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Great", created.Comment)
		assert.False(t, created.Timestamp.IsZero())
	}
	_, err := service.CreateEvaluation(ctx, evaluation.Input{MangaID: otherMangaID, UserID: userID, Rating: 1})
	require.NoError(t, err)

	evaluations, total, err := service.ListByManga(ctx, mangaID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, evaluations, 2)

	summary, err := service.Summarize(ctx, mangaID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 4.5, summary.Average, 0.0001)

	count, err := service.CountByManga(ctx, otherMangaID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = service.CountByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestService_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input evaluation.Input
		want  []string
	}{
		{"missing everything", evaluation.Input{}, []string{evaluation.FieldMangaID, evaluation.FieldUserID, evaluation.FieldRating}},
		{"bad ids", evaluation.Input{MangaID: "abc", UserID: "def", Rating: 3}, []string{evaluation.FieldMangaID, evaluation.FieldUserID}},
		{"rating too high", evaluation.Input{MangaID: mangaID, UserID: userID, Rating: 6}, []string{evaluation.FieldRating}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService().CreateEvaluation(context.Background(), tt.input)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)

			fields := []string{}
			for _, detail := range appErr.Details {
				fields = append(fields, detail.Field)
			}
			assert.ElementsMatch(t, tt.want, fields)
		})
	}
}

func TestService_Ownership(t *testing.T) {
	service := newService()

	_, err := service.CreateEvaluation(sessionOf(otherUserID), evaluation.Input{MangaID: mangaID, UserID: userID, Rating: 3})
	assert.Equal(t, apperr.CodeForbidden, apperr.As(err).Code)

	created, err := service.CreateEvaluation(sessionOf(userID), evaluation.Input{MangaID: mangaID, UserID: userID, Rating: 3})
	require.NoError(t, err)

	_, err = service.UpdateEvaluation(sessionOf(otherUserID), created.ID, evaluation.Input{MangaID: mangaID, UserID: otherUserID, Rating: 1})
	assert.Equal(t, apperr.CodeForbidden, apperr.As(err).Code)

	updated, err := service.UpdateEvaluation(sessionOf(userID), created.ID, evaluation.Input{MangaID: mangaID, UserID: userID, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	assert.Equal(t, apperr.CodeForbidden, apperr.As(service.DeleteEvaluation(sessionOf(otherUserID), created.ID)).Code)
	assert.NoError(t, service.DeleteEvaluation(sessionOf(userID), created.ID))
	assert.True(t, apperr.IsNotFound(service.DeleteEvaluation(context.Background(), created.ID)))
}
