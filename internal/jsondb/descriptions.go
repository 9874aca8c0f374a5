package jsondb

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"pegboard/internal/fileutil"
)

// DescriptionRecord is one line of the JSONL description exchange format.
// Export emits every game; patch files carry the same shape back with the
// description rewritten.
type DescriptionRecord struct {
	PlatformKey string `json:"platform_key"`
	Platform    string `json:"platform,omitempty"`
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Developer   string `json:"developer,omitempty"`
	File        string `json:"file,omitempty"`
	Description string `json:"description"`
	IsHack      bool   `json:"is_hack,omitempty"`
}

// HackDetector classifies an entry as a rom hack for the export records.
type HackDetector interface {
	IsHack(platformKey, title, romPath string) bool
}

// ExportDescriptions writes one JSONL record per game across all payloads
// to path, atomically.
func ExportDescriptions(platforms []Platform, detector HackDetector, path string) (int, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)

	count := 0
	for _, platform := range platforms {
		for _, g := range platform.Games {
			record := DescriptionRecord{
				PlatformKey: platform.Key,
				Platform:    platform.Platform,
				ID:          g.ID,
				Title:       g.Title,
				Developer:   g.Developer,
				File:        g.File,
				Description: g.Description,
				IsHack:      detector.IsHack(platform.Key, g.Title, g.File),
			}
			if err := encoder.Encode(record); err != nil {
				return 0, fmt.Errorf("encode description record: %w", err)
			}
			count++
		}
	}

	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return count, nil
}

// ApplyDescriptions reads every patch file matching batch_*_out.jsonl under
// patchDir and writes the patched descriptions back into the payloads under
// dir, keyed by platform key and game id. Records for unknown platforms or
// ids are counted as skipped, never fatal.
func ApplyDescriptions(dir, patchDir string) (applied, skipped int, err error) {
	paths, err := filepath.Glob(filepath.Join(patchDir, "batch_*_out.jsonl"))
	if err != nil {
		return 0, 0, fmt.Errorf("glob patch files: %w", err)
	}
	sort.Strings(paths)

	// platform key -> game id -> description
	patches := make(map[string]map[string]string)
	for _, path := range paths {
		if err := readPatchFile(path, patches); err != nil {
			return 0, 0, err
		}
	}

	for key, byID := range patches {
		payloadPath := PathFor(dir, key)
		platform, err := Load(payloadPath)
		if err != nil {
			skipped += len(byID)
			continue
		}
		changed := false
		for i := range platform.Games {
			g := &platform.Games[i]
			description, ok := byID[g.ID]
			if !ok {
				continue
			}
			delete(byID, g.ID)
			applied++
			if g.Description != description {
				g.Description = description
				changed = true
			}
		}
		skipped += len(byID)
		if changed {
			if _, err := Save(dir, platform); err != nil {
				return applied, skipped, err
			}
		}
	}
	return applied, skipped, nil
}

func readPatchFile(path string, patches map[string]map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open patch file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var record DescriptionRecord
		if err := json.Unmarshal(line, &record); err != nil {
			// Malformed lines are dropped; patch files come from external
			// tooling and a bad line must not block the rest of the batch.
			continue
		}
		if record.PlatformKey == "" || record.ID == "" {
			continue
		}
		byID := patches[record.PlatformKey]
		if byID == nil {
			byID = make(map[string]string)
			patches[record.PlatformKey] = byID
		}
		byID[record.ID] = record.Description
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read patch file %s: %w", filepath.Base(path), err)
	}
	return nil
}
