// Package config loads shop connection settings from YAML files.
//
// A connection file looks like:
//
//	shop: example.myshopify.com
//	mode: private
//	credentials:
//	  api_key: key
//	  password: secret
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shopmodel/shopmodel/pkg/types"
)

// Parse decodes a YAML connection document and validates it.
func Parse(data []byte) (types.Connection, error) {
	var conn types.Connection
	if err := yaml.Unmarshal(data, &conn); err != nil {
		return types.Connection{}, fmt.Errorf("failed to parse connection config: %w", err)
	}
	if err := conn.Validate(); err != nil {
		return types.Connection{}, err
	}
	return conn, nil
}

// Load reads and parses a connection file.
func Load(path string) (types.Connection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Connection{}, fmt.Errorf("failed to read connection config: %w", err)
	}
	return Parse(data)
}
