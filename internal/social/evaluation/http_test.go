// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package evaluation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangateca/internal/social/evaluation"
)

func passThrough(next http.Handler) http.Handler { return next }

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
	return recorder
}

func newRouter() http.Handler {
	router := chi.NewRouter()
	router.Route("/evaluations", evaluation.NewHandler(newService(), passThrough).RegisterRoutes)
	return router
}

func TestHandler_EmptyMangaReturnsOK(t *testing.T) {
	recorder := serve(newRouter(), http.MethodGet, "/evaluations/"+mangaID, "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"data":[]`)
	assert.Contains(t, recorder.Body.String(), `"total":0`)
}

func TestHandler_Lifecycle(t *testing.T) {
	router := newRouter()

	recorder := serve(router, http.MethodPost, "/evaluations", `{"mangaId":"`+mangaID+`","userId":"`+userID+`","rating":4,"comment":"Solid"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data evaluation.Evaluation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, mangaID, created.Data.MangaID)

	recorder = serve(router, http.MethodGet, "/evaluations/"+mangaID+"/summary", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"count":1`)
	assert.Contains(t, recorder.Body.String(), `"average":4`)

	recorder = serve(router, http.MethodGet, "/evaluations?mangaId="+mangaID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), created.Data.ID)

	recorder = serve(router, http.MethodPut, "/evaluations/"+created.Data.ID, `{"mangaId":"`+mangaID+`","userId":"`+userID+`","rating":9}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"field":"rating"`)

	recorder = serve(router, http.MethodDelete, "/evaluations/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = serve(router, http.MethodDelete, "/evaluations/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = serve(router, http.MethodGet, "/evaluations/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
