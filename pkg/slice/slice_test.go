// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/mangateca/pkg/slice"
)

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"action", "drama"}, slice.Unique([]string{"action", "drama", "action"}))
	assert.Equal(t, []string{}, slice.Unique[string](nil))
}

func TestAppendUnique(t *testing.T) {
	list, changed := slice.AppendUnique([]string{"a"}, "b")
	assert.True(t, changed)
	assert.Equal(t, []string{"a", "b"}, list)

	list, changed = slice.AppendUnique(list, "b")
	assert.False(t, changed)
	assert.Equal(t, []string{"a", "b"}, list)
}

func TestRemove(t *testing.T) {
	original := []string{"a", "b", "a"}
	list, changed := slice.Remove(original, "a")
	assert.True(t, changed)
	assert.Equal(t, []string{"b"}, list)
	assert.Equal(t, []string{"a", "b", "a"}, original)

	list, changed = slice.Remove(list, "z")
	assert.False(t, changed)
	assert.Equal(t, []string{"b"}, list)

	list, _ = slice.Remove([]string{"b"}, "b")
	assert.NotNil(t, list)
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, slice.Map([]string{"a", "b"}, strings.ToUpper))
}
