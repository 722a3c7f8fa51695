package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const lastRunFileName = "last-run.json"

// LastRun records which binary version ran most recently.
type LastRun struct {
	Version string    `json:"version"`
	RanAt   time.Time `json:"ran_at"`
}

// LoadLastRun reads the last-run record from the config directory.
// Returns nil, nil if the file does not exist (first run).
func LoadLastRun(configDir string) (*LastRun, error) {
	path := filepath.Join(configDir, lastRunFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading last-run record: %w", err)
	}

	var lr LastRun
	if err := json.Unmarshal(data, &lr); err != nil {
		return nil, fmt.Errorf("parsing last-run record: %w", err)
	}
	return &lr, nil
}

// SaveLastRun writes the last-run record to the config directory.
func SaveLastRun(configDir string, lr *LastRun) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(lr, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling last-run record: %w", err)
	}

	path := filepath.Join(configDir, lastRunFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing last-run record: %w", err)
	}
	return nil
}
