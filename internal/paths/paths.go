package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// NaveditDir returns ~/.navedit.
func NaveditDir() string {
	return filepath.Join(home(), ".navedit")
}

// ConfigFile returns ~/.navedit/config.yaml.
func ConfigFile() string {
	return filepath.Join(NaveditDir(), "config.yaml")
}

// SnapshotFile returns ~/.navedit/navigation.json.
func SnapshotFile() string {
	return filepath.Join(NaveditDir(), "navigation.json")
}
