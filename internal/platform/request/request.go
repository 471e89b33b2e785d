// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and body decoding, so that
handlers report malformed input with the same validation envelope.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/ctxutil"
	"github.com/taibuivan/mangateca/internal/platform/sec"
	"github.com/taibuivan/mangateca/internal/platform/validate"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

An empty body decodes to the zero value. A malformed value, or any data after
the first value, returns validate.ErrInvalidJSON. Unknown fields are ignored.
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	decoder := json.NewDecoder(body)

	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return validate.ErrInvalidJSON
	}

	var trailing json.RawMessage
	if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter and checks that it has the shape of an id.

Returns:
  - string: the parameter value
  - error: a VALIDATION_ERROR naming the parameter if it is malformed
*/
func ID(request *http.Request, name string) (string, error) {
	value := chi.URLParam(request, name)
	if !validate.IsID(value) {
		return "", validate.RequiredError(name, "Must be a valid id")
	}
	return strings.ToLower(value), nil
}

// QueryID returns an optional id filter from the query string.
// An absent parameter yields an empty string and no error.
func QueryID(request *http.Request, name string) (string, error) {
	value := strings.TrimSpace(request.URL.Query().Get(name))
	if value == "" {
		return "", nil
	}
	if !validate.IsID(value) {
		return "", validate.RequiredError(name, "Must be a valid id")
	}
	return strings.ToLower(value), nil
}

/*
Session extracts the caller's session claims from the request context.

Returns nil if the request is anonymous.
*/
func Session(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetSession(request.Context())
}

/*
RequiredSession ensures the request carries a session and returns its claims.

Returns:
  - *sec.AuthClaims: the session claims
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredSession(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetSession(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

// BearerToken returns the raw token of an "Authorization: Bearer" header.
func BearerToken(request *http.Request) string {
	parts := strings.Fields(request.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
