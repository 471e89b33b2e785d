// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/mangateca/internal/platform/apperr"
	"github.com/taibuivan/mangateca/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Manga", "get_manga"))

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"pg_no_rows", pgx.ErrNoRows, apperr.CodeNotFound},
		{"mongo_no_documents", fmt.Errorf("find: %w", mongo.ErrNoDocuments), apperr.CodeNotFound},
		{"pg_unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, apperr.CodeConflict},
		{"mongo_duplicate", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}, apperr.CodeConflict},
		{"other", errors.New("connection reset"), apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "Account", "create_account")
			ae := apperr.As(wrapped)
			if assert.NotNil(t, ae) {
				assert.Equal(t, tt.wantCode, ae.Code)
			}
		})
	}
}
