package metadata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"pegboard/internal/launch"
)

// parseState tracks whether key lines target the header or a game block.
type parseState int

const (
	stateHeader parseState = iota
	stateGame
)

// blockKind identifies the active multi-line accumulation, if any.
type blockKind int

const (
	blockNone blockKind = iota
	blockLaunch
	blockDescription
	blockIgnoreFiles
	blockExtensions
	blockFiles
)

// extraKeys lists keys that have no dedicated field but are still kept,
// verbatim, in Game.Extra. Anything not listed here or handled explicitly
// is dropped without failing the parse.
var extraKeys = map[string]struct{}{
	"publisher": {},
	"genre":     {},
	"rating":    {},
	"release":   {},
	"players":   {},
	"summary":   {},
}

// parserContext carries the whole state machine for one parse: current
// section, active multi-line block, and the block's buffered lines. It is
// fed one line at a time so individual transitions stay testable.
type parserContext struct {
	state   parseState
	block   blockKind
	buf     []string
	header  Header
	games   []Game
	current *Game
}

// Parse reads metadata from r. Content irregularities never fail the
// parse; the only possible error is a read failure.
func Parse(r io.Reader) (Header, []Game, error) {
	var ctx parserContext

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		ctx.feed(line)
	}
	if err := scanner.Err(); err != nil {
		return Header{}, nil, fmt.Errorf("read metadata: %w", err)
	}

	header, games := ctx.finish()
	return header, games, nil
}

// ParseFile reads and parses the metadata file at path.
func ParseFile(path string) (Header, []Game, error) {
	file, err := os.Open(path)
	if err != nil {
		return Header{}, nil, fmt.Errorf("open metadata: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

func (p *parserContext) feed(raw string) {
	line := strings.TrimRight(raw, "\r")
	trimmed := strings.TrimSpace(line)

	// Blank lines never terminate a block; hand-edited files space out
	// long descriptions and file lists freely.
	if trimmed == "" {
		return
	}

	if line[0] == ' ' || line[0] == '\t' {
		if p.block != blockNone {
			p.buf = append(p.buf, trimmed)
		}
		// Continuation with no active block: stray indentation, dropped.
		return
	}

	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
		return
	}

	key, value, ok := splitKeyLine(line)
	if !ok {
		return
	}

	p.flushBlock()
	p.keyLine(key, value)
}

// splitKeyLine splits a column-zero line into a normalized key and its
// trimmed value. Lines whose key part contains whitespace are not key
// lines (prose with a colon in it) and are rejected.
func splitKeyLine(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(line[:idx]))
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

func (p *parserContext) keyLine(key, value string) {
	switch key {
	case "game":
		p.finalizeGame()
		p.state = stateGame
		// A block without a title cannot exist; everything until the next
		// game: line is dropped.
		if value != "" {
			p.current = &Game{Title: value}
		}
	case "collection":
		if p.state == stateHeader {
			p.header.Collection = value
		}
	case "sort-by":
		if p.state == stateHeader {
			p.header.SortBy = value
		} else if p.current != nil {
			p.current.SortBy = value
		}
	case "developer":
		if p.current != nil {
			p.current.Developer = value
		}
	case "file":
		if p.current != nil && value != "" {
			p.current.Roms = append(p.current.Roms, value)
			if p.current.File == "" {
				p.current.File = value
			}
		}
	case "files":
		if p.current != nil {
			p.startBlock(blockFiles, value)
		}
	case "launch":
		p.startBlock(blockLaunch, value)
	case "description":
		if p.current != nil {
			p.startBlock(blockDescription, value)
		}
	case "ignore-files":
		if p.state == stateHeader {
			p.startBlock(blockIgnoreFiles, value)
		}
	case "extension", "extensions":
		if p.state != stateHeader {
			return
		}
		if value != "" {
			// Single-line comma form, no buffering.
			p.header.Extensions = append(p.header.Extensions, splitExtensions(value)...)
			return
		}
		p.startBlock(blockExtensions, "")
	default:
		p.extraKey(key, value)
	}
}

func (p *parserContext) extraKey(key, value string) {
	if kind, ok := strings.CutPrefix(key, "assets."); ok {
		if kind == "" || p.current == nil {
			return
		}
		if p.current.Assets == nil {
			p.current.Assets = make(map[string]string)
		}
		p.current.Assets[strings.ReplaceAll(kind, "-", "_")] = value
		return
	}
	if _, ok := extraKeys[key]; !ok {
		return
	}
	if p.current == nil {
		return
	}
	if p.current.Extra == nil {
		p.current.Extra = make(map[string]string)
	}
	p.current.Extra[strings.ReplaceAll(key, "-", "_")] = value
}

func (p *parserContext) startBlock(kind blockKind, seed string) {
	p.block = kind
	p.buf = nil
	if seed != "" {
		p.buf = append(p.buf, seed)
	}
}

func (p *parserContext) flushBlock() {
	kind := p.block
	lines := p.buf
	p.block = blockNone
	p.buf = nil

	switch kind {
	case blockNone:
	case blockLaunch:
		text := strings.Join(stripMarker(lines, "launch:"), "\n")
		if p.state == stateHeader {
			p.header.Launch = text
		} else if p.current != nil {
			p.current.Launch = text
		}
	case blockDescription:
		if p.current != nil {
			p.current.Description = strings.Join(stripMarker(lines, "description:"), "\n")
		}
	case blockIgnoreFiles:
		for _, line := range lines {
			if line != "" {
				p.header.IgnoreFiles = append(p.header.IgnoreFiles, line)
			}
		}
	case blockExtensions:
		for _, line := range lines {
			p.header.Extensions = append(p.header.Extensions, splitExtensions(line)...)
		}
	case blockFiles:
		if p.current == nil {
			return
		}
		for _, line := range lines {
			// Stray repeats of the marker show up in hand-merged files.
			if line == "" || strings.EqualFold(line, "files:") {
				continue
			}
			p.current.Roms = append(p.current.Roms, line)
		}
	}
}

// stripMarker removes a leading "key:" marker from the first buffered line
// so stored block values contain only the content.
func stripMarker(lines []string, marker string) []string {
	if len(lines) == 0 {
		return lines
	}
	rest, ok := strings.CutPrefix(lines[0], marker)
	if !ok {
		return lines
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return lines[1:]
	}
	out := make([]string, 0, len(lines))
	out = append(out, rest)
	return append(out, lines[1:]...)
}

// splitExtensions parses a comma-separated extension list into lowercase
// tokens without the leading dot.
func splitExtensions(value string) []string {
	parts := strings.Split(value, ",")
	exts := make([]string, 0, len(parts))
	for _, part := range parts {
		ext := strings.ToLower(strings.TrimSpace(part))
		ext = strings.TrimPrefix(ext, ".")
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

// finalizeGame reconciles roms with the primary file, applies asset
// defaults, and commits the current game. Called on each game: transition
// and once at end of input.
func (p *parserContext) finalizeGame() {
	p.flushBlock()

	g := p.current
	p.current = nil
	if g == nil || g.Title == "" {
		return
	}

	if len(g.Roms) == 0 && g.File != "" {
		g.Roms = []string{g.File}
	}
	if g.Roms == nil {
		g.Roms = []string{}
	}
	if len(g.Roms) > 0 && g.File == "" {
		g.File = g.Roms[0]
	}
	if len(g.Assets) == 0 {
		g.Assets = defaultAssets(g.Title)
	}

	p.games = append(p.games, *g)
}

func (p *parserContext) finish() (Header, []Game) {
	p.finalizeGame()

	if p.header.IgnoreFiles == nil {
		p.header.IgnoreFiles = []string{}
	}
	if p.header.Extensions == nil {
		p.header.Extensions = []string{}
	}

	// Best-effort core extraction from per-game launch overrides; absence
	// is not an error.
	for i := range p.games {
		if p.games[i].Launch != "" {
			p.games[i].CoreOverride = launch.ExtractCore(p.games[i].Launch)
		}
	}

	return p.header, p.games
}
