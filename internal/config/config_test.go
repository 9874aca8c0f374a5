package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"pegboard/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.ResourceRoot != filepath.Join(tempHome, "Resource") {
		t.Fatalf("unexpected resource root: %q", cfg.Paths.ResourceRoot)
	}
	if cfg.Paths.JSONDBDir != filepath.Join(tempHome, "jsondb") {
		t.Fatalf("unexpected jsondb dir: %q", cfg.Paths.JSONDBDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Cores.Platform["dc"] != "flycast" {
		t.Fatalf("expected default dc core, got %q", cfg.Cores.Platform["dc"])
	}
	if cfg.Cores.Extension[".cue"] != "mednafen_psx_hw" {
		t.Fatalf("expected default .cue core, got %q", cfg.Cores.Extension[".cue"])
	}
}

func TestLoadExpandsAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, tempHome)

	cfgPath := filepath.Join(tempHome, "pegboard.toml")
	content := `
[paths]
resource_root = "~/roms/Resource"
log_dir = "~/logs"

[logging]
format = "JSON"
level = "Debug"

[cores.extension]
"CHD" = "flycast"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if resolved != cfgPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}

	if cfg.Paths.ResourceRoot != filepath.Join(tempHome, "roms", "Resource") {
		t.Fatalf("tilde not expanded: %q", cfg.Paths.ResourceRoot)
	}
	if cfg.Paths.LogDir != filepath.Join(tempHome, "logs") {
		t.Fatalf("log dir not expanded: %q", cfg.Paths.LogDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not lowercased: %+v", cfg.Logging)
	}
	// Extension keys gain a leading dot and are lowercased.
	if cfg.Cores.Extension[".chd"] != "flycast" {
		t.Fatalf("extension table not normalized: %+v", cfg.Cores.Extension)
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, tempHome)

	cfgPath := filepath.Join(tempHome, "bad.toml")
	if err := os.WriteFile(cfgPath, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := config.Load(cfgPath); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, tempHome)

	samplePath := filepath.Join(tempHome, "cfg", "config.toml")
	if err := config.CreateSample(samplePath); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(samplePath)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Cores.Platform["ss_hack"] != "mednafen_saturn_hw" {
		t.Fatalf("sample core table not loaded: %+v", cfg.Cores.Platform)
	}
	if len(cfg.Descriptions.HackKeywords) == 0 {
		t.Fatal("expected hack keywords in sample")
	}
}

func TestEnsureDirectories(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, tempHome)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.JSONDBDir, cfg.Paths.CanonicalDir, cfg.Paths.FrontendDir, filepath.Dir(cfg.Paths.RomDBPath)} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s", dir)
		}
	}
	if _, err := os.Stat(cfg.Paths.ResourceRoot); !os.IsNotExist(err) {
		t.Fatalf("resource root should not be created, stat err = %v", err)
	}
}
