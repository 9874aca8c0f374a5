// Package library locates platform collections under a resource root. A
// platform is any directory containing a metadata.pegasus.txt file; its
// directory name is the display name and its slug is the stable key used
// by every downstream store and exporter.
package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pegboard/internal/textutil"
)

// MetadataFileName is the per-platform collection file the frontend reads.
const MetadataFileName = "metadata.pegasus.txt"

// ErrPlatformNotFound is returned by Find when no platform matches a key.
var ErrPlatformNotFound = errors.New("platform not found")

// Platform is one discovered collection directory.
type Platform struct {
	// Key is the slugified directory name, unique within a resource root.
	Key string
	// Name is the directory name as authored, used for display.
	Name string
	// Dir is the absolute platform directory.
	Dir string
	// MetadataPath is the absolute path of the collection file.
	MetadataPath string
}

// Discover scans resourceRoot for platform directories, sorted by key.
// Directories without a metadata file and dot or underscore prefixed
// directories (scratch and media dirs) are skipped.
func Discover(resourceRoot string) ([]Platform, error) {
	entries, err := os.ReadDir(resourceRoot)
	if err != nil {
		return nil, fmt.Errorf("read resource root: %w", err)
	}

	platforms := []Platform{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		dir := filepath.Join(resourceRoot, name)
		metadataPath := filepath.Join(dir, MetadataFileName)
		if _, err := os.Stat(metadataPath); err != nil {
			continue
		}
		platforms = append(platforms, Platform{
			Key:          textutil.Slug(name),
			Name:         name,
			Dir:          dir,
			MetadataPath: metadataPath,
		})
	}

	sort.Slice(platforms, func(i, j int) bool { return platforms[i].Key < platforms[j].Key })
	return platforms, nil
}

// Find returns the platform whose key or directory name matches key.
func Find(resourceRoot, key string) (Platform, error) {
	platforms, err := Discover(resourceRoot)
	if err != nil {
		return Platform{}, err
	}
	slug := textutil.Slug(key)
	for _, platform := range platforms {
		if platform.Key == slug || platform.Name == key {
			return platform, nil
		}
	}
	return Platform{}, fmt.Errorf("%w: %q", ErrPlatformNotFound, key)
}
