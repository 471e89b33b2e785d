// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangateca/internal/platform/middleware"
	"github.com/taibuivan/mangateca/internal/users/account"
)

func newRouter(t *testing.T) http.Handler {
	f := newFixture(t, account.Options{})

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(f.service))
	router.Route("/accounts", account.NewHandler(f.service, middleware.RequireAuth).RegisterRoutes)
	return router
}

func call(router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_SessionFlow(t *testing.T) {
	router := newRouter(t)

	recorder := call(router, http.MethodPost, "/accounts/register", "", `{"username":"naoki","email":"naoki@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")

	recorder = call(router, http.MethodPost, "/accounts/register", "", `{"username":"again","email":"naoki@example.com","password":"hunter22"}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = call(router, http.MethodPost, "/accounts/login", "", `{"email":"naoki@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = call(router, http.MethodPost, "/accounts/login", "", `{"email":"naoki@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var login struct {
		Data account.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))
	token := login.Data.Token
	accountID := login.Data.Account.ID

	recorder = call(router, http.MethodGet, "/accounts/me", token, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"username":"naoki"`)

	recorder = call(router, http.MethodPut, "/accounts/"+accountID+"/favorites/"+mangaID, token, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = call(router, http.MethodPut, "/accounts/"+accountID+"/favorites/"+mangaID, token, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"favorites":["`+mangaID+`"]`)

	recorder = call(router, http.MethodDelete, "/accounts/"+accountID+"/favorites/"+mangaID, token, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"favorites":[]`)

	recorder = call(router, http.MethodPost, "/accounts/logout", token, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = call(router, http.MethodGet, "/accounts/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_RequiresSession(t *testing.T) {
	router := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, call(router, http.MethodGet, "/accounts/me", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(router, http.MethodPost, "/accounts/logout", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(router, http.MethodGet, "/accounts/"+mangaID, "", "").Code)
}
