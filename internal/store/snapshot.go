package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadSnapshot reads a locally stored navigation document.
func LoadSnapshot(path string) (Navigation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Navigation{}, fmt.Errorf("reading snapshot: %w", err)
	}
	var doc Navigation
	if err := json.Unmarshal(data, &doc); err != nil {
		return Navigation{}, fmt.Errorf("parsing snapshot: %w", err)
	}
	return doc, nil
}

// SaveSnapshot writes the navigation document to disk, creating the parent
// directory if needed.
func SaveSnapshot(path string, doc Navigation) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
