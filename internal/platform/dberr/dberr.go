// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Both entity store backends route their driver errors through here so the
// service layer sees the same [apperr.AppError] regardless of the driver.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
)

// Wrap inspects a database error and converts it into a meaningful [apperr.AppError].
//
// resource names the entity for NOT_FOUND and CONFLICT messages; action is
// recorded on internal errors for the server logs.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(resource)
	}

	// 2. Unique-constraint mapping
	if IsUniqueViolation(err) {
		return apperr.Conflict(resource + " already exists")
	}

	// 3. Anything else is an internal failure with the cause kept for logs
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a Postgres 23505 or a Mongo duplicate-key error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return mongo.IsDuplicateKeyError(err)
}
