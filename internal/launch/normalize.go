// Package launch extracts structured emulator information from free-form
// launch command strings embedded in collection metadata. Commands are
// shell-like (often Android `am start` invocations or retroarch calls) and
// hand edited, so every helper here is best effort: an unparseable command
// yields a Command with only Raw populated, never an error.
package launch

import (
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// Command is the structured form of a raw launch string.
type Command struct {
	// Raw is the original command text, verbatim.
	Raw string
	// Emulator is the recognized front-end identifier, empty when the
	// command names no known emulator binary.
	Emulator string
	// Binary is the token that identified the emulator.
	Binary string
	// Core is the libretro core file name referenced by the command.
	Core string
	// RomArgIndex is the zero-based token index of the first rom
	// placeholder, or -1 when the command has none.
	RomArgIndex int
}

// knownEmulators maps recognized binary base names to their canonical
// front-end identifier.
var knownEmulators = map[string]string{
	"retroarch":   "retroarch",
	"retroarch32": "retroarch",
	"flycast":     "flycast",
	"redream":     "redream",
	"duckstation": "duckstation",
	"pcsx2":       "pcsx2",
	"ppsspp":      "ppsspp",
	"dolphin-emu": "dolphin",
	"mednafen":    "mednafen",
	"mame":        "mame",
}

// romPlaceholders lists the accepted spellings of the current-file
// substitution token, lowercased.
var romPlaceholders = []string{
	"{file.path}",
	"{file}",
	"%rom%",
	"%rom_raw%",
}

// Normalize parses a raw launch command into its structured form.
func Normalize(raw string) Command {
	cmd := Command{Raw: raw, RomArgIndex: -1}

	tokens := tokenize(raw)
	for _, token := range tokens {
		base := binaryBase(token)
		if emulator, ok := knownEmulators[base]; ok {
			cmd.Emulator = emulator
			cmd.Binary = token
			break
		}
	}

	cmd.Core = ExtractCore(raw)

	for i, token := range tokens {
		if isRomPlaceholder(token) {
			cmd.RomArgIndex = i
			break
		}
	}

	return cmd
}

// ExtractCore scans a launch command for a loadable libretro core
// reference and returns the core file's base name, or "" when the command
// references none. Both the retroarch `-L <path>` flag and the Android
// activity-extra form `-e LIBRETRO <path>` are recognized, with a generic
// fallback for any token naming a *_libretro* file.
func ExtractCore(command string) string {
	for _, line := range strings.Split(command, "\n") {
		tokens := tokenize(line)
		for i, token := range tokens {
			switch {
			case token == "-L" && i+1 < len(tokens):
				if name := coreName(tokens[i+1]); name != "" {
					return name
				}
			case strings.EqualFold(token, "LIBRETRO") && i > 0 && tokens[i-1] == "-e" && i+1 < len(tokens):
				if name := coreName(tokens[i+1]); name != "" {
					return name
				}
			}
		}
	}
	for _, token := range tokenize(command) {
		base := baseName(token)
		if strings.Contains(base, "_libretro") {
			return base
		}
	}
	return ""
}

// tokenize splits a command the way a shell would, honoring quoting.
// Unbalanced quoting degrades to simple whitespace splitting rather than
// failing the normalization. Commands with backslashes are Windows paths,
// not shell escapes, so they skip shell parsing entirely.
func tokenize(command string) []string {
	if strings.ContainsRune(command, '\\') {
		return strings.Fields(command)
	}
	fields, err := shell.Fields(command, func(string) string { return "" })
	if err != nil || len(fields) == 0 {
		return strings.Fields(command)
	}
	return fields
}

// baseName returns the last path segment, accepting both separator styles;
// backslash-heavy Windows paths appear in hand-written commands.
func baseName(p string) string {
	p = strings.Trim(p, `"'`)
	if idx := strings.LastIndexAny(p, `/\`); idx >= 0 {
		p = p[idx+1:]
	}
	return p
}

func binaryBase(token string) string {
	base := strings.ToLower(baseName(token))
	return strings.TrimSuffix(base, ".exe")
}

// coreName accepts a token known to be in core position and returns its
// base name when it plausibly names a loadable core file.
func coreName(token string) string {
	base := baseName(token)
	if base == "" {
		return ""
	}
	if strings.Contains(base, "_libretro") {
		return base
	}
	switch {
	case strings.HasSuffix(base, ".so"), strings.HasSuffix(base, ".dll"), strings.HasSuffix(base, ".dylib"):
		return base
	}
	return ""
}

func isRomPlaceholder(token string) bool {
	lowered := strings.ToLower(strings.Trim(token, `"'`))
	for _, placeholder := range romPlaceholders {
		if lowered == placeholder {
			return true
		}
	}
	return false
}
