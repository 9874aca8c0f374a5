// Package closure proves that parsing a metadata file, serializing the
// result canonically, and reparsing the output yields semantically equal
// data. The format is hand-edited and repeatedly regenerated, so this
// round-trip property is checked before any destructive rewrite.
package closure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"pegboard/internal/metadata"
)

// scratchDirName holds the temporary canonical serialization next to the
// source file during a verification.
const scratchDirName = "_norm_test"

// Report is the outcome of one verification. Mismatches are results, not
// errors; only I/O failures surface as errors from Verify.
type Report struct {
	// Path is the verified source file.
	Path string
	// Match reports whether both parses are semantically equal.
	Match bool
	// HeaderDiff holds a JSON rendering of both headers when they differ.
	HeaderDiff string
	// GameDiff describes the first differing game pair, or a game present
	// on only one side.
	GameDiff string
	// Games is the number of games in the source parse.
	Games int
}

// Verify checks the round-trip stability of the metadata file at path. The
// canonical serialization is written to a scratch file under _norm_test/
// beside the source and removed afterwards; removal failures are logged,
// never propagated.
func Verify(path string, log *slog.Logger) (Report, error) {
	report := Report{Path: path}

	header, games, err := metadata.ParseFile(path)
	if err != nil {
		return report, err
	}
	report.Games = len(games)

	scratch := filepath.Join(filepath.Dir(path), scratchDirName, filepath.Base(path)+".norm")
	if err := metadata.WriteFile(scratch, header, games); err != nil {
		return report, fmt.Errorf("write scratch serialization: %w", err)
	}
	defer func() {
		if err := os.Remove(scratch); err != nil {
			log.Warn("scratch file not removed", "path", scratch, "error", err)
			return
		}
		// Best effort; the directory may hold other files in a batch run.
		os.Remove(filepath.Dir(scratch))
	}()

	header2, games2, err := metadata.ParseFile(scratch)
	if err != nil {
		return report, fmt.Errorf("reparse scratch serialization: %w", err)
	}

	report.Match = true
	if diff := diffHeaders(header, header2); diff != "" {
		report.Match = false
		report.HeaderDiff = diff
	}
	if diff := diffGames(header, games, header2, games2); diff != "" {
		report.Match = false
		report.GameDiff = diff
	}
	return report, nil
}

func diffHeaders(a, b metadata.Header) string {
	left, right := normalizeHeader(a), normalizeHeader(b)
	if reflect.DeepEqual(left, right) {
		return ""
	}
	return renderDiff("header", left, right)
}

// diffGames compares games as an order-independent collection keyed by
// title and first rom, reporting the first difference in key order.
func diffGames(ha metadata.Header, a []metadata.Game, hb metadata.Header, b []metadata.Game) string {
	left := normalizeGames(a, ha)
	right := normalizeGames(b, hb)

	keys := make([]gameKey, 0, len(left)+len(right))
	for key := range left {
		keys = append(keys, key)
	}
	for key := range right {
		if _, ok := left[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Title != keys[j].Title {
			return keys[i].Title < keys[j].Title
		}
		return keys[i].FirstRom < keys[j].FirstRom
	})

	for _, key := range keys {
		lg, lok := left[key]
		rg, rok := right[key]
		switch {
		case !rok:
			return fmt.Sprintf("game %q (%s): missing after round trip", key.Title, key.FirstRom)
		case !lok:
			return fmt.Sprintf("game %q (%s): appeared after round trip", key.Title, key.FirstRom)
		case !reflect.DeepEqual(lg, rg):
			return renderDiff(fmt.Sprintf("game %q", key.Title), lg, rg)
		}
	}
	return ""
}

// renderDiff formats both sides as indented JSON for human triage.
func renderDiff(subject string, left, right any) string {
	lj, _ := json.MarshalIndent(left, "", "  ")
	rj, _ := json.MarshalIndent(right, "", "  ")
	return fmt.Sprintf("%s differs\nsource:\n%s\nround trip:\n%s", subject, lj, rj)
}
