// Package testsupport provides fixtures shared by package tests: seeded
// configurations, metadata file builders, and a throwaway rom store.
package testsupport

import (
	"path/filepath"
	"testing"

	"pegboard/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ResourceRoot = filepath.Join(base, "resources")
	cfgVal.Paths.JSONDBDir = filepath.Join(base, "jsondb")
	cfgVal.Paths.CanonicalDir = filepath.Join(base, "canonical")
	cfgVal.Paths.FrontendDir = filepath.Join(base, "frontends")
	cfgVal.Paths.RomDBPath = filepath.Join(base, "romdb", "roms.db")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Descriptions.RawPath = filepath.Join(base, "descriptions_raw.jsonl")
	cfgVal.Descriptions.PatchDir = filepath.Join(base, "descriptions_ai")
	cfgVal.Logging.Format = "console"
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithResourceRoot overrides the resource root on the test config.
func WithResourceRoot(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.ResourceRoot = path
	}
}

// WithPlatformCore adds a platform core mapping to the test config.
func WithPlatformCore(platformKey, core string) ConfigOption {
	return func(b *configBuilder) {
		if b.cfg.Cores.Platform == nil {
			b.cfg.Cores.Platform = make(map[string]string)
		}
		b.cfg.Cores.Platform[platformKey] = core
	}
}
