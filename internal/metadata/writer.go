package metadata

import (
	"fmt"
	"io"
	"strings"

	"pegboard/internal/fileutil"
)

// Render returns the canonical serialization of a collection. Layout,
// indentation, and field order are fixed here; the same logical input
// always produces byte-identical output.
func Render(header Header, games []Game) []byte {
	var b strings.Builder
	writeHeader(&b, header)
	for i := range games {
		writeGame(&b, &games[i], &header)
	}
	return []byte(b.String())
}

// Write serializes the collection to w in canonical form.
func Write(w io.Writer, header Header, games []Game) error {
	if _, err := w.Write(Render(header, games)); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// WriteFile atomically replaces path with the canonical serialization.
func WriteFile(path string, header Header, games []Game) error {
	return fileutil.WriteFileAtomic(path, Render(header, games), 0o644)
}

func writeHeader(b *strings.Builder, h Header) {
	start := b.Len()
	if h.Collection != "" {
		fmt.Fprintf(b, "collection: %s\n", h.Collection)
	}
	if h.SortBy != "" {
		fmt.Fprintf(b, "sort-by: %s\n", h.SortBy)
	}
	writeBlockValue(b, "launch", h.Launch)
	if len(h.IgnoreFiles) > 0 {
		b.WriteString("ignore-files:\n")
		for _, pattern := range h.IgnoreFiles {
			fmt.Fprintf(b, "  %s\n", pattern)
		}
	}
	if len(h.Extensions) > 0 {
		b.WriteString("extension:\n")
		for _, ext := range h.Extensions {
			fmt.Fprintf(b, "  %s\n", ext)
		}
	}
	// A fully empty header emits nothing, not a stray blank line.
	if b.Len() > start {
		b.WriteByte('\n')
	}
}

func writeGame(b *strings.Builder, g *Game, h *Header) {
	if g.Title == "" {
		return
	}
	fmt.Fprintf(b, "game: %s\n", g.Title)

	switch {
	case len(g.Roms) == 1:
		fmt.Fprintf(b, "file: %s\n", g.Roms[0])
	case len(g.Roms) > 1:
		b.WriteString("files:\n")
		for _, rom := range g.Roms {
			fmt.Fprintf(b, "  %s\n", rom)
		}
	}

	if g.SortBy != "" {
		fmt.Fprintf(b, "sort-by: %s\n", g.SortBy)
	}
	if g.Developer != "" {
		fmt.Fprintf(b, "developer: %s\n", g.Developer)
	}

	// Asset lines are persisted only for multi-disc games; single-file
	// games reconstruct them by convention, keeping the common case terse.
	if g.MultiDisc() {
		for _, kind := range assetKinds(g.Assets) {
			fmt.Fprintf(b, "assets.%s: %s\n", kind, rewriteAssetPath(g.Assets[kind], g.Roms))
		}
	}

	writeBlockValue(b, "description", g.Description)

	if launchOverridden(g.Launch, h.Launch) {
		writeBlockValue(b, "launch", g.Launch)
	}

	b.WriteByte('\n')
}

// writeBlockValue emits a key with a possibly multi-line value: inline for
// a single line, block form with two-space indentation otherwise. Empty
// values emit nothing.
func writeBlockValue(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	lines := strings.Split(value, "\n")
	if len(lines) == 1 {
		fmt.Fprintf(b, "%s: %s\n", key, lines[0])
		return
	}
	fmt.Fprintf(b, "%s:\n", key)
	for _, line := range lines {
		fmt.Fprintf(b, "  %s\n", line)
	}
}

// launchOverridden reports whether a game's launch block must be emitted:
// only when present and, after whitespace trimming, different from the
// inherited header default.
func launchOverridden(game, header string) bool {
	trimmed := strings.TrimSpace(game)
	if trimmed == "" {
		return false
	}
	return trimmed != strings.TrimSpace(header)
}
