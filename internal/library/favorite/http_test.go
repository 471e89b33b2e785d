// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangateca/internal/library/favorite"
)

func passThrough(next http.Handler) http.Handler { return next }

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
	return recorder
}

func TestHandler_AddMangaTwice(t *testing.T) {
	router := chi.NewRouter()
	router.Route("/favorites", favorite.NewHandler(newService(), passThrough).RegisterRoutes)

	recorder := serve(router, http.MethodPost, "/favorites", `{"userId":"`+userID+`","name":"Shelf"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data favorite.FavoriteList `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	listID := created.Data.ID

	for range 2 {
		recorder = serve(router, http.MethodPost, "/favorites/"+listID+"/mangas", `{"mangaId":"`+mangaID+`"}`)
		require.Equal(t, http.StatusOK, recorder.Code)
	}
	assert.Contains(t, recorder.Body.String(), `"mangas":["`+mangaID+`"]`)

	recorder = serve(router, http.MethodGet, "/favorites?userId="+userID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":1`)

	recorder = serve(router, http.MethodDelete, "/favorites/"+listID+"/mangas/"+mangaID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"mangas":[]`)

	recorder = serve(router, http.MethodPost, "/favorites/"+listID+"/mangas", `{"mangaId":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = serve(router, http.MethodDelete, "/favorites/"+listID, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = serve(router, http.MethodGet, "/favorites/"+listID, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
