package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// zeroWidthReplacer removes zero-width characters that survive copy/paste
// from game databases and wikis. U+2028/U+2029 are dropped rather than
// treated as line breaks; metadata files only ever use \n.
var zeroWidthReplacer = strings.NewReplacer(
	"\u200b", "", // zero width space
	"\u200c", "", // zero width non-joiner
	"\u200d", "", // zero width joiner
	"\ufeff", "", // BOM / zero width no-break space
	"\u2028", "", // line separator
	"\u2029", "", // paragraph separator
)

// Clean normalizes hand-edited metadata text for comparison: Unicode NFKC
// (full-width/half-width and ligature folding), zero-width character
// removal, newline canonicalization to \n, and removal of trailing
// whitespace per line plus surrounding blank lines.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = zeroWidthReplacer.Replace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Dedent strips leading whitespace from every line. The writer's chosen
// indentation width for block values is not semantically meaningful.
func Dedent(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}
	return strings.Join(lines, "\n")
}
