// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalogctl reads and edits the Mangateca catalog through its REST API.
//
// Views resolve references the way the web front end does: a manga shows its
// author name, a favorite list shows manga titles, and dangling references
// render as placeholders. Output is JSON or YAML.
//
// The migrate subcommands talk to PostgreSQL directly and need DATABASE_URL.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
