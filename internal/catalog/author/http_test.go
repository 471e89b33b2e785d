// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangateca/internal/catalog/author"
)

func passThrough(next http.Handler) http.Handler { return next }

func newRouter() http.Handler {
	service := author.NewService(newMemoryRepository(), nil, discardLogger)
	router := chi.NewRouter()
	router.Route("/authors", author.NewHandler(service, passThrough).RegisterRoutes)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
	return recorder
}

func TestHandler_Lifecycle(t *testing.T) {
	router := newRouter()

	recorder := serve(router, http.MethodPost, "/authors", `{"name":"Naoki Urasawa","occupations":["mangaka"]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data author.Author `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	id := created.Data.ID

	recorder = serve(router, http.MethodGet, "/authors/"+id, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"notableWorks":[]`)

	recorder = serve(router, http.MethodPut, "/authors/"+id, `{"name":"Urasawa"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"name":"Urasawa"`)

	recorder = serve(router, http.MethodGet, "/authors?page=1&limit=10", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"currentPage":1`)
	assert.Contains(t, recorder.Body.String(), `"totalPages":1`)

	recorder = serve(router, http.MethodDelete, "/authors/"+id, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	recorder = serve(router, http.MethodGet, "/authors/"+id, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_Errors(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"missing name", http.MethodPost, "/authors", `{}`, http.StatusBadRequest, `"field":"name"`},
		{"invalid json", http.MethodPost, "/authors", `{"name":`, http.StatusBadRequest, `"code":"VALIDATION_ERROR"`},
		{"malformed id", http.MethodGet, "/authors/not-an-id", "", http.StatusBadRequest, `"field":"id"`},
		{"unknown id", http.MethodDelete, "/authors/01890a5d-ac96-774b-bcce-b302099a8057", "", http.StatusNotFound, `"code":"NOT_FOUND"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(router, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}
