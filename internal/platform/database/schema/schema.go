// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the relational table and column names used by the
// Postgres repositories, so that queries never spell identifiers inline.
package schema

import "strings"

// List joins column names for a SELECT or INSERT column list.
func List(columns ...string) string {
	return strings.Join(columns, ", ")
}
