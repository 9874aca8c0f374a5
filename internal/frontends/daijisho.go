// Package frontends converts collection payloads into the formats other
// launchers consume: Daijisho platform files, ES-DE gamelists, and
// per-game RetroArch core overrides. Converters read payloads only; the
// source metadata is never touched.
package frontends

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"pegboard/internal/fileutil"
	"pegboard/internal/jsondb"
)

// daijishoEntry is one game in a Daijisho import file.
type daijishoEntry struct {
	Title       string `json:"title"`
	RomPath     string `json:"romPath"`
	SortTitle   string `json:"sortTitle,omitempty"`
	Description string `json:"description,omitempty"`
	BoxFront    string `json:"boxFront,omitempty"`
}

type daijishoPlatform struct {
	Platform string          `json:"platform"`
	Key      string          `json:"key"`
	Games    []daijishoEntry `json:"games"`
}

// WriteDaijisho writes the Daijisho import file for one payload under
// outRoot/daijisho/ and returns the written path.
func WriteDaijisho(payload jsondb.Platform, outRoot string) (string, error) {
	out := daijishoPlatform{
		Platform: payload.Platform,
		Key:      payload.Key,
		Games:    make([]daijishoEntry, 0, len(payload.Games)),
	}
	for _, g := range payload.Games {
		out.Games = append(out.Games, daijishoEntry{
			Title:       g.Title,
			RomPath:     g.File,
			SortTitle:   g.SortBy,
			Description: g.Description,
			BoxFront:    g.Assets["box_front"],
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode daijisho platform: %w", err)
	}
	path := filepath.Join(outRoot, "daijisho", payload.Key+".json")
	if err := fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
