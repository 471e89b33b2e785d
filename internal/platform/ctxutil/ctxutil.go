// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/sec"
)

// contextKey keeps the request values private to this package.
type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keySession   contextKey = "session"
	keyLogger    contextKey = "logger"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(keyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Session

// WithSession returns a new context carrying the session claims of the caller.
func WithSession(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, keySession, claims)
}

// GetSession retrieves the [*sec.AuthClaims] from the [context.Context].
// It returns nil for anonymous requests.
func GetSession(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(keySession).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// CheckOwner allows the operation when the request is anonymous, when the
// session belongs to ownerID, or when the session has the admin role.
//
// Anonymous requests are gated by the router, not here: when writes require
// a session the route never reaches the service without one.
func CheckOwner(ctx context.Context, ownerID string) error {
	claims := GetSession(ctx)
	if claims == nil {
		return nil
	}
	if claims.UserID == ownerID || sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) {
		return nil
	}
	return apperr.Forbidden("Insufficient permissions")
}
