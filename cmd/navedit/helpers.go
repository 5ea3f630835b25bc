package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/auditworks/navedit/internal/config"
	"github.com/auditworks/navedit/internal/paths"
	"github.com/auditworks/navedit/internal/store"
)

// loadConfig reads ~/.navedit/config.yaml.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(paths.ConfigFile())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, fmt.Errorf("no config at %s (create it with an 'endpoint:' entry)", paths.ConfigFile())
		}
		return config.Config{}, err
	}
	return cfg, nil
}

// loadSnapshot reads the local navigation snapshot.
func loadSnapshot() (store.Navigation, error) {
	doc, err := store.LoadSnapshot(paths.SnapshotFile())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store.Navigation{}, fmt.Errorf("no local snapshot (run 'navedit pull' first)")
		}
		return store.Navigation{}, err
	}
	return doc, nil
}

// saveSnapshot writes the local navigation snapshot.
func saveSnapshot(doc store.Navigation) error {
	return store.SaveSnapshot(paths.SnapshotFile(), doc)
}
