// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/validate"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	service := author.NewService(newMemoryRepository(), nil, discardLogger)

	created, err := service.CreateAuthor(ctx, author.Input{
		Name:         "  Naoki Urasawa ",
		Occupations:  []string{"mangaka", "musician"},
		NotableWorks: []string{"Monster", "20th Century Boys"},
	})
	require.NoError(t, err)

	assert.True(t, validate.IsID(created.ID))
	assert.Equal(t, "Naoki Urasawa", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, []string{"mangaka", "musician"}, created.Occupations)

	loaded, err := service.GetAuthor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.NotableWorks, loaded.NotableWorks)
}

func TestService_CreateValidation(t *testing.T) {
	service := author.NewService(newMemoryRepository(), nil, discardLogger)

	_, err := service.CreateAuthor(context.Background(), author.Input{
		Name:      " ",
		Pseudonym: strings.Repeat("x", 201),
	})
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)

	fields := []string{}
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{author.FieldName, author.FieldPseudonym}, fields)
}

func TestService_CreateNormalizesLists(t *testing.T) {
	created, err := author.NewService(newMemoryRepository(), nil, discardLogger).
		CreateAuthor(context.Background(), author.Input{Name: "Rumiko Takahashi"})
	require.NoError(t, err)

	assert.NotNil(t, created.Occupations)
	assert.NotNil(t, created.NotableWorks)
}

func TestService_UpdateReplacesDocument(t *testing.T) {
	ctx := context.Background()
	service := author.NewService(newMemoryRepository(), nil, discardLogger)

	created, err := service.CreateAuthor(ctx, author.Input{Name: "Eiichiro Oda", Biography: "bio"})
	require.NoError(t, err)

	updated, err := service.UpdateAuthor(ctx, created.ID, author.Input{Name: "Oda"})
	require.NoError(t, err)
	assert.Equal(t, "Oda", updated.Name)
	assert.Empty(t, updated.Biography)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = service.UpdateAuthor(ctx, "01890a5d-ac96-774b-bcce-b302099a8057", author.Input{Name: "x"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing author", func(t *testing.T) {
		service := author.NewService(newMemoryRepository(), nil, discardLogger)
		err := service.DeleteAuthor(ctx, "01890a5d-ac96-774b-bcce-b302099a8057")
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("guard rejects", func(t *testing.T) {
		repository := newMemoryRepository()
		guard := guardFunc(func(context.Context, string) error { return apperr.Conflict("Author is still referenced") })
		service := author.NewService(repository, guard, discardLogger)

		created, err := service.CreateAuthor(ctx, author.Input{Name: "Kentaro Miura"})
		require.NoError(t, err)

		err = service.DeleteAuthor(ctx, created.ID)
		assert.True(t, apperr.IsConflict(err))

		_, err = service.GetAuthor(ctx, created.ID)
		assert.NoError(t, err)
	})

	t.Run("deletes", func(t *testing.T) {
		service := author.NewService(newMemoryRepository(), nil, discardLogger)
		created, err := service.CreateAuthor(ctx, author.Input{Name: "Hirohiko Araki"})
		require.NoError(t, err)

		require.NoError(t, service.DeleteAuthor(ctx, created.ID))

		_, err = service.GetAuthor(ctx, created.ID)
		assert.True(t, apperr.IsNotFound(err))
	})
}
