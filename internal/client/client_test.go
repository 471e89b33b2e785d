// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/catalog/manga"
	"github.com/taibuivan/mangateca/internal/client"
	"github.com/taibuivan/mangateca/internal/library/favorite"
	"github.com/taibuivan/mangateca/internal/users/account"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeAPI serves a fixed data set with the server's envelopes.
type fakeAPI struct {
	mu        sync.Mutex
	authors   map[string]author.Author
	mangas    map[string]manga.Manga
	lists     map[string]favorite.FavoriteList
	accounts  map[string]account.Account
	requests  atomic.Int64
	delay     time.Duration
	inFlight  atomic.Int64
	maxFlight atomic.Int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		authors:  map[string]author.Author{},
		mangas:   map[string]manga.Manga{},
		lists:    map[string]favorite.FavoriteList{},
		accounts: map[string]account.Account{},
	}
}

func writeJSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

func notFound(writer http.ResponseWriter, resource string) {
	writeJSON(writer, http.StatusNotFound, map[string]string{"message": resource + " not found", "code": "NOT_FOUND"})
}

func (api *fakeAPI) track(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		api.requests.Add(1)
		current := api.inFlight.Add(1)
		defer api.inFlight.Add(-1)
		for {
			seen := api.maxFlight.Load()
			if current <= seen || api.maxFlight.CompareAndSwap(seen, current) {
				break
			}
		}
		if api.delay > 0 {
			time.Sleep(api.delay)
		}
		next(writer, request)
	}
}

func (api *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /authors/{id}", api.track(func(writer http.ResponseWriter, request *http.Request) {
		api.mu.Lock()
		found, ok := api.authors[request.PathValue("id")]
		api.mu.Unlock()
		if !ok {
			notFound(writer, "Author")
			return
		}
		writeJSON(writer, http.StatusOK, map[string]any{"data": found})
	}))

	mux.HandleFunc("GET /mangas/{id}", api.track(func(writer http.ResponseWriter, request *http.Request) {
		api.mu.Lock()
		found, ok := api.mangas[request.PathValue("id")]
		var inlined *author.Author
		if resolved, exists := api.authors[found.AuthorID]; exists {
			inlined = &resolved
		}
		api.mu.Unlock()
		if !ok {
			notFound(writer, "Manga")
			return
		}
		writeJSON(writer, http.StatusOK, map[string]any{"data": manga.Detail{Manga: &found, Author: inlined}})
	}))

	mux.HandleFunc("GET /mangas", api.track(func(writer http.ResponseWriter, request *http.Request) {
		api.mu.Lock()
		items := []manga.Manga{}
		for _, item := range api.mangas {
			if filter := request.URL.Query().Get("authorId"); filter == "" || item.AuthorID == filter {
				items = append(items, item)
			}
		}
		api.mu.Unlock()
		writeJSON(writer, http.StatusOK, map[string]any{
			"data": items,
			"meta": map[string]int{"currentPage": 1, "totalPages": 1, "total": len(items), "limit": 20},
		})
	}))

	mux.HandleFunc("POST /mangas", api.track(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusBadRequest, map[string]any{
			"message": "Validation failed",
			"code":    "VALIDATION_ERROR",
			"errors":  []map[string]string{{"field": "title", "message": "Required"}},
		})
	}))

	mux.HandleFunc("DELETE /mangas/{id}", api.track(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	}))

	mux.HandleFunc("GET /favorites/{id}", api.track(func(writer http.ResponseWriter, request *http.Request) {
		api.mu.Lock()
		found, ok := api.lists[request.PathValue("id")]
		api.mu.Unlock()
		if !ok {
			notFound(writer, "Favorite list")
			return
		}
		writeJSON(writer, http.StatusOK, map[string]any{"data": found})
	}))

	mux.HandleFunc("GET /accounts/{id}", api.track(func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("Authorization") != "Bearer token-1" {
			writeJSON(writer, http.StatusUnauthorized, map[string]string{"message": "Authentication required", "code": "UNAUTHORIZED"})
			return
		}
		api.mu.Lock()
		found, ok := api.accounts[request.PathValue("id")]
		api.mu.Unlock()
		if !ok {
			notFound(writer, "Account")
			return
		}
		writeJSON(writer, http.StatusOK, map[string]any{"data": found})
	}))

	mux.HandleFunc("GET /authors", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusInternalServerError)
		_, _ = writer.Write([]byte("upstream exploded"))
	})

	return mux
}

func startAPI(t *testing.T, api *fakeAPI) (*client.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)
	return client.New(server.URL, discardLogger, client.WithHTTPClient(server.Client())), server
}

func TestClient_GetManga(t *testing.T) {
	api := newFakeAPI()
	api.authors["a1"] = author.Author{ID: "a1", Name: "Naoki Urasawa"}
	api.mangas["m1"] = manga.Manga{ID: "m1", Title: "Monster", AuthorID: "a1", Genres: []string{"thriller"}}
	api.mangas["m2"] = manga.Manga{ID: "m2", Title: "Orphan", AuthorID: "gone"}
	c, _ := startAPI(t, api)

	detail, err := c.GetManga(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "Monster", detail.Title)
	require.NotNil(t, detail.Author)
	assert.Equal(t, "Naoki Urasawa", detail.Author.Name)
	assert.Equal(t, []string{"thriller"}, detail.Genres)

	detail, err = c.GetManga(context.Background(), "m2")
	require.NoError(t, err)
	assert.Nil(t, detail.Author)

	page, err := c.ListMangas(context.Background(), "a1", client.ListOptions{Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Meta.Total)
	assert.Equal(t, "m1", page.Data[0].ID)

	assert.NoError(t, c.DeleteManga(context.Background(), "m1"))
}

func TestClient_Errors(t *testing.T) {
	api := newFakeAPI()
	c, _ := startAPI(t, api)
	ctx := context.Background()

	_, err := c.CreateManga(ctx, manga.Input{})
	var failure *client.Error
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusBadRequest, failure.Status)
	assert.Equal(t, "VALIDATION_ERROR", failure.Code)
	assert.Equal(t, []client.FieldError{{Field: "title", Message: "Required"}}, failure.Fields)
	assert.Contains(t, failure.Error(), "create manga")

	_, err = c.GetAuthor(ctx, "missing")
	assert.True(t, client.IsNotFound(err))
	assert.False(t, client.IsConflict(err))

	_, err = c.GetAccount(ctx, "u1")
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusUnauthorized, failure.Status)

	api.accounts["u1"] = account.Account{ID: "u1", Username: "naoki"}
	found, err := c.WithSession("token-1").GetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "naoki", found.Username)

	_, err = c.ListAuthors(ctx, client.ListOptions{})
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusInternalServerError, failure.Status)
	assert.Equal(t, "upstream exploded", failure.Message)

	unreachable := client.New("http://127.0.0.1:1", discardLogger, client.WithTimeout(time.Second))
	_, err = unreachable.ListAuthors(ctx, client.ListOptions{})
	require.ErrorAs(t, err, &failure)
	assert.Zero(t, failure.Status)
	assert.Error(t, failure.Unwrap())
}

func TestClient_ValidateIDSkipsNetwork(t *testing.T) {
	api := newFakeAPI()
	c, _ := startAPI(t, api)
	ctx := context.Background()

	calls := []func() error{
		func() error { _, err := c.GetManga(ctx, ""); return err },
		func() error { _, err := c.GetAuthor(ctx, "   "); return err },
		func() error { return c.DeleteEvaluation(ctx, "\t") },
		func() error { _, err := c.AddMangaToList(ctx, "list", " "); return err },
		func() error { _, err := c.AddFavorite(ctx, "", "m1"); return err },
	}

	for _, run := range calls {
		err := run()
		require.Error(t, err)
		assert.True(t, errors.Is(err, client.ErrInvalidID))
	}
	assert.Zero(t, api.requests.Load())
}
