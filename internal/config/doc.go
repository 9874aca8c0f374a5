// Package config loads, normalizes, and validates pegboard configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: the resource root holding per-platform metadata, the
// jsondb/canonical/frontend output roots, the rom hash database location,
// and the core-selection policy tables.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
