// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/mangateca/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "?page=3&limit=5", 3, 5},
		{"garbage", "?page=abc&limit=xyz", 1, 20},
		{"negative", "?page=-2&limit=0", 1, 20},
		{"clamped_limit", "?limit=1000", 1, 100},
		{"overflowing_page", "?page=" + strconv.Itoa(math.MaxInt) + "&limit=100", math.MaxInt / 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/mangas"+tt.query, nil)
			params := pagination.FromRequest(request)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.GreaterOrEqual(t, params.Offset(), 0)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 10, 21)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 21, meta.Total)

	assert.Equal(t, 0, pagination.NewMeta(1, 10, 0).TotalPages)
}

func TestParams_Meta(t *testing.T) {
	meta := pagination.Params{Page: 4, Limit: 25}.Meta(80)
	assert.Equal(t, pagination.Meta{CurrentPage: 4, TotalPages: 4, Total: 80, Limit: 25}, meta)
}
