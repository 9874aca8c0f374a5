package closure

import (
	"sort"
	"strings"

	"pegboard/internal/metadata"
	"pegboard/internal/textutil"
)

// normHeader and normGame are the comparison forms. They carry only the
// fields the canonical writer is required to preserve; derived data (core
// override, asset defaults) and keys the writer intentionally drops are
// excluded so the check measures round-trip fidelity, not writer policy.
type normHeader struct {
	Collection  string   `json:"collection"`
	SortBy      string   `json:"sort_by"`
	Launch      string   `json:"launch"`
	IgnoreFiles []string `json:"ignore_files"`
	Extensions  []string `json:"extensions"`
}

type normGame struct {
	Title       string   `json:"title"`
	Roms        []string `json:"roms"`
	SortBy      string   `json:"sort_by"`
	Developer   string   `json:"developer"`
	Description string   `json:"description"`
	Launch      string   `json:"launch"`
}

// gameKey pairs games across the two parses. Block order in source text
// carries no meaning, so games are matched by identity, not position.
type gameKey struct {
	Title    string
	FirstRom string
}

func normalizeHeader(h metadata.Header) normHeader {
	return normHeader{
		Collection:  textutil.Clean(h.Collection),
		SortBy:      textutil.Clean(h.SortBy),
		Launch:      normalizeBlock(h.Launch),
		IgnoreFiles: normalizeList(h.IgnoreFiles),
		Extensions:  normalizeList(h.Extensions),
	}
}

func normalizeGame(g metadata.Game, header metadata.Header) normGame {
	launch := normalizeBlock(g.Launch)
	// An override identical to the inherited default is not persisted by
	// the writer, so it compares equal to no override at all.
	if launch == normalizeBlock(header.Launch) {
		launch = ""
	}
	return normGame{
		Title:       textutil.Clean(g.Title),
		Roms:        normalizeRoms(g.Roms),
		SortBy:      textutil.Clean(g.SortBy),
		Developer:   textutil.Clean(g.Developer),
		Description: normalizeBlock(g.Description),
		Launch:      launch,
	}
}

func normalizeGames(games []metadata.Game, header metadata.Header) map[gameKey]normGame {
	out := make(map[gameKey]normGame, len(games))
	for i := range games {
		norm := normalizeGame(games[i], header)
		key := gameKey{Title: norm.Title}
		if len(norm.Roms) > 0 {
			key.FirstRom = norm.Roms[0]
		}
		out[key] = norm
	}
	return out
}

// normalizeBlock strips the indentation the writer chooses for block-form
// values; indentation width is layout, not content.
func normalizeBlock(value string) string {
	return textutil.Clean(textutil.Dedent(value))
}

// normalizeList maps a nil list to an empty one and re-splits entries that
// still carry the comma-joined text form.
func normalizeList(values []string) []string {
	out := []string{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// normalizeRoms trims, drops empties, deduplicates, and sorts. Rom list
// order is not semantically meaningful for the round-trip check.
func normalizeRoms(roms []string) []string {
	seen := make(map[string]struct{}, len(roms))
	out := []string{}
	for _, rom := range roms {
		rom = strings.TrimSpace(rom)
		if rom == "" {
			continue
		}
		if _, ok := seen[rom]; ok {
			continue
		}
		seen[rom] = struct{}{}
		out = append(out, rom)
	}
	sort.Strings(out)
	return out
}
