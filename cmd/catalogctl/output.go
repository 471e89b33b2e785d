// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateOutput(format string) error {
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
	return nil
}

// render writes value as indented JSON or as YAML. YAML goes through the JSON
// encoding first so both formats share the camelCase keys and field order of
// the API.
func render(writer io.Writer, format string, value any) error {
	if format == formatJSON {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	var document yaml.Node
	if err := yaml.Unmarshal(payload, &document); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	blockStyle(&document)

	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(&document); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return encoder.Close()
}

// blockStyle drops the flow and quoting styles the JSON input carries.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
