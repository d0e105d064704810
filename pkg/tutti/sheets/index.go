package sheets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tutti/pkg/tutti/models"
)

// LoadIndex reads the spreadsheets index file. A missing file yields a
// fresh empty index; a newer format version than this build understands is
// an error.
func LoadIndex(path string) (*models.Index, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return models.NewIndex(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("spreadsheets index %s: %w", path, err)
	}

	var ix models.Index
	if err := json.Unmarshal(raw, &ix); err != nil {
		return nil, fmt.Errorf("spreadsheets index %s: %w", path, err)
	}
	if ix.Version > models.IndexVersion {
		return nil, fmt.Errorf("spreadsheets index %s: unsupported version %d", path, ix.Version)
	}
	if ix.Version == 0 {
		ix.Version = models.IndexVersion
	}
	if ix.Spreadsheets == nil {
		ix.Spreadsheets = make(map[string]string)
	}
	return &ix, nil
}

// SaveIndex writes the index atomically: to a temp file in the target
// directory, then renamed over the destination.
func SaveIndex(path string, ix *models.Index) error {
	raw, err := json.MarshalIndent(ix, "", "  ")
	if err != nil {
		return fmt.Errorf("spreadsheets index %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("spreadsheets index %s: %w", path, err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".spreadsheets-*.json")
	if err != nil {
		return fmt.Errorf("spreadsheets index %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("spreadsheets index %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("spreadsheets index %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("spreadsheets index %s: %w", path, err)
	}
	return nil
}
