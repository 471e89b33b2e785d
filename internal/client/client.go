// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package client is a typed Go client for the Mangateca REST API.

Each backend operation has one method. Every call is logged at debug level,
failures go through a single error path that returns [*Error], and ids are
checked for presence before any network round trip.

Usage:

	c := client.New("http://localhost:8080", logger)
	detail, err := c.GetManga(ctx, id)

The resolver in resolve.go builds view models on top of these calls.
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/mangateca/pkg/pagination"
)

const defaultTimeout = 10 * time.Second

// Client calls the Mangateca API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	logger  *slog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.http.Timeout = timeout }
}

// WithToken sends the session token as a bearer credential.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New returns a client for the API rooted at baseURL.
func New(baseURL string, logger *slog.Logger, options ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// WithSession returns a copy of the client authenticated with token.
func (c *Client) WithSession(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// ListOptions selects a page of a listing. Zero values use the server defaults.
type ListOptions struct {
	Page  int
	Limit int
}

func (options ListOptions) query() url.Values {
	values := url.Values{}
	if options.Page > 0 {
		values.Set("page", strconv.Itoa(options.Page))
	}
	if options.Limit > 0 {
		values.Set("limit", strconv.Itoa(options.Limit))
	}
	return values
}

// Page is one page of a listing.
type Page[T any] struct {
	Data []T            `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// envelope is the success body of single-resource responses.
type envelope[T any] struct {
	Data T `json:"data"`
}

// call is one API round trip.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// do executes the call and decodes the response body into out when out is non-nil.
func (c *Client) do(ctx context.Context, request call, out any) error {
	target := c.baseURL + request.path
	if len(request.query) > 0 {
		target += "?" + request.query.Encode()
	}

	var reader io.Reader
	if request.body != nil {
		payload, err := json.Marshal(request.body)
		if err != nil {
			return &Error{Op: request.op, Message: "failed to encode request", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, request.method, target, reader)
	if err != nil {
		return &Error{Op: request.op, Message: "failed to build request", Err: err}
	}
	httpRequest.Header.Set("Accept", "application/json")
	if reader != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		httpRequest.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	response, err := c.http.Do(httpRequest)
	if err != nil {
		return c.handleError(request, nil, err)
	}
	defer response.Body.Close()

	c.logger.DebugContext(ctx, "client_call",
		slog.String("op", request.op),
		slog.String("method", request.method),
		slog.String("path", request.path),
		slog.Int("status", response.StatusCode),
		slog.Duration("duration", time.Since(started)),
	)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return c.handleError(request, response, nil)
	}

	if out == nil || response.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return c.handleError(request, nil, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// handleError logs a failed call and converts it into an [*Error]. Either
// response or cause is set.
func (c *Client) handleError(request call, response *http.Response, cause error) error {
	failure := &Error{Op: request.op, Err: cause}

	if response != nil {
		failure.Status = response.StatusCode

		var body errorBody
		raw, _ := io.ReadAll(io.LimitReader(response.Body, 1<<20))
		if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
			failure.Message = body.Message
			failure.Code = body.Code
			failure.Fields = body.Errors
		} else {
			failure.Message = strings.TrimSpace(string(raw))
		}
		if failure.Message == "" {
			failure.Message = http.StatusText(response.StatusCode)
		}
	} else if cause != nil {
		failure.Message = "request failed"
		if errors.Is(cause, context.DeadlineExceeded) {
			failure.Message = "request timed out"
		}
	}

	c.logger.Warn("client_call_failed",
		slog.String("op", request.op),
		slog.String("method", request.method),
		slog.String("path", request.path),
		slog.Int("status", failure.Status),
		slog.String("code", failure.Code),
		slog.String("error", failure.Error()),
	)
	return failure
}

// validateID rejects empty and whitespace ids before any network call.
func validateID(op, field, id string) error {
	if strings.TrimSpace(id) == "" {
		return &Error{Op: op, Message: field + " is required", Err: ErrInvalidID}
	}
	return nil
}

// escape cleans an id for use as a path segment.
func escape(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}
