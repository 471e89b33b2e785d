// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangateca/internal/platform/config"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/mangateca")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, config.PolicyOrphan, cfg.ReferencePolicy)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	assert.False(t, cfg.RequireAuthForWrites)
	assert.True(t, cfg.IsDevelopment())
}

func TestParse_Mongo(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("REFERENCE_POLICY", "restrict")

	cfg, err := config.Parse()
	require.NoError(t, err)
	assert.Equal(t, "mangateca", cfg.MongoDatabase)
	assert.Equal(t, config.PolicyRestrict, cfg.ReferencePolicy)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing_secret", map[string]string{"DATABASE_URL": "postgres://x"}},
		{"postgres_without_dsn", map[string]string{"SESSION_SECRET": "s"}},
		{"unknown_driver", map[string]string{"SESSION_SECRET": "s", "STORE_DRIVER": "sqlite"}},
		{"unknown_policy", map[string]string{"SESSION_SECRET": "s", "DATABASE_URL": "postgres://x", "REFERENCE_POLICY": "cascade"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", "")
			t.Setenv("DATABASE_URL", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := config.Parse()
			assert.Error(t, err)
		})
	}
}
