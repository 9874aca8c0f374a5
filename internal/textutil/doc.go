// Package textutil provides text normalization helpers shared by the
// metadata parser, the closure verifier, and platform discovery.
//
// The primary use cases are:
//   - Cleaning hand-edited metadata text (Unicode NFKC, zero-width
//     character removal, newline canonicalization)
//   - Deriving filesystem-safe platform keys from directory names
package textutil
