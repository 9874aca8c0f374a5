// Package metadata parses and serializes Pegasus-style collection metadata
// files.
//
// The format is line oriented and hand edited: `key: value` pairs at column
// zero, indented continuation lines forming multi-line blocks (launch
// commands, descriptions, file lists), and repeated `game:` blocks that
// inherit defaults from a shared header. The parser favors maximal recovery
// over strict validation; malformed lines are dropped, and only I/O
// failures surface as errors. The writer produces one canonical layout so
// regenerated files are byte-stable regardless of how the source text was
// arranged.
package metadata
