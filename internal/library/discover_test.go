package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func makePlatform(t *testing.T, root, name string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "collection: " + name + "\n"
	if err := os.WriteFile(filepath.Join(dir, MetadataFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	makePlatform(t, root, "Sega Saturn")
	makePlatform(t, root, "Dreamcast")
	makePlatform(t, root, "_norm_test")
	makePlatform(t, root, ".hidden")

	// Directory without a metadata file is not a platform.
	if err := os.MkdirAll(filepath.Join(root, "media"), 0o755); err != nil {
		t.Fatal(err)
	}

	platforms, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(platforms) != 2 {
		t.Fatalf("got %d platforms, want 2: %+v", len(platforms), platforms)
	}
	if platforms[0].Key != "dreamcast" || platforms[0].Name != "Dreamcast" {
		t.Errorf("platforms[0] = %+v", platforms[0])
	}
	if platforms[1].Key != "sega_saturn" || platforms[1].Name != "Sega Saturn" {
		t.Errorf("platforms[1] = %+v", platforms[1])
	}
	if filepath.Base(platforms[0].MetadataPath) != MetadataFileName {
		t.Errorf("MetadataPath = %q", platforms[0].MetadataPath)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	makePlatform(t, root, "Sega Saturn")

	for _, key := range []string{"sega_saturn", "Sega Saturn"} {
		platform, err := Find(root, key)
		if err != nil {
			t.Fatalf("Find(%q): %v", key, err)
		}
		if platform.Key != "sega_saturn" {
			t.Errorf("Find(%q).Key = %q", key, platform.Key)
		}
	}

	_, err := Find(root, "ps2")
	if !errors.Is(err, ErrPlatformNotFound) {
		t.Errorf("err = %v, want ErrPlatformNotFound", err)
	}
}
