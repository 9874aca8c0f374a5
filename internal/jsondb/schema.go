// Package jsondb persists parsed collections as per-platform JSON payloads.
// The JSON form is the working database for downstream tooling: exporters
// read it, the description patch cycle rewrites it, and restore turns it
// back into canonical metadata text.
package jsondb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pegboard/internal/fileutil"
)

// SchemaVersion marks the payload layout. Bump when a field changes
// meaning so stale payloads are regenerated rather than misread.
const SchemaVersion = 2

// Platform is one collection's payload, stored as jsondb/<key>.json.
type Platform struct {
	SchemaVersion int    `json:"schema_version"`
	Key           string `json:"key"`
	// Platform is the display name of the source directory.
	Platform      string   `json:"platform"`
	Collection    string   `json:"collection"`
	DefaultSortBy string   `json:"default_sort_by,omitempty"`
	LaunchBlock   string   `json:"launch_block,omitempty"`
	IgnoreFiles   []string `json:"ignore_files"`
	Extensions    []string `json:"extensions"`
	// DefaultCore is extracted from the header launch block.
	DefaultCore string `json:"default_core,omitempty"`
	Games       []Game `json:"games"`
}

// Game is one library entry in the payload.
type Game struct {
	// ID is a stable uuid minted on first export and preserved across
	// re-exports; it keys the description patch cycle.
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	File        string   `json:"file"`
	Roms        []string `json:"roms"`
	SortBy      string   `json:"sort_by,omitempty"`
	Developer   string   `json:"developer,omitempty"`
	Description string   `json:"description,omitempty"`
	// LaunchOverride is present only when it differs from the platform's
	// launch block.
	LaunchOverride string            `json:"launch_override,omitempty"`
	CoreOverride   string            `json:"core_override,omitempty"`
	Assets         map[string]string `json:"assets,omitempty"`
	Extra          map[string]string `json:"extra,omitempty"`
}

// PathFor returns the payload path for a platform key.
func PathFor(dir, key string) string {
	return filepath.Join(dir, key+".json")
}

// Load reads one platform payload.
func Load(path string) (Platform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Platform{}, fmt.Errorf("read payload: %w", err)
	}
	var platform Platform
	if err := json.Unmarshal(data, &platform); err != nil {
		return Platform{}, fmt.Errorf("decode payload %s: %w", filepath.Base(path), err)
	}
	return platform, nil
}

// Save writes one platform payload atomically.
func Save(dir string, platform Platform) (string, error) {
	data, err := json.MarshalIndent(platform, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	path := PathFor(dir, platform.Key)
	if err := fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadAll reads every payload under dir, sorted by file name.
func LoadAll(dir string) ([]Platform, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob payloads: %w", err)
	}
	platforms := make([]Platform, 0, len(paths))
	for _, path := range paths {
		platform, err := Load(path)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, platform)
	}
	return platforms, nil
}
