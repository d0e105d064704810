package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteDataFile marshals v as indented JSON and writes it to path, creating
// parent directories as needed.
func WriteDataFile(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("data file %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("data file %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("data file %s: %w", path, err)
	}
	return nil
}

// ReadDataFile unmarshals the JSON data file at path into v.
func ReadDataFile(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("data file %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("data file %s: %w", path, err)
	}
	return nil
}
