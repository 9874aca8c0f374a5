package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"pegboard/internal/library"
)

// WritePlatform creates a platform directory with a metadata file under
// root and returns the metadata path.
func WritePlatform(t testing.TB, root, name, content string) string {
	t.Helper()

	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create platform dir: %v", err)
	}
	path := filepath.Join(dir, library.MetadataFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write metadata file: %v", err)
	}
	return path
}

// WriteFile fills the target path with the requested number of bytes using
// a simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create parent dir: %v", err)
	}
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 257)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}
