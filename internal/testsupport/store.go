package testsupport

import (
	"testing"

	"pegboard/internal/config"
	"pegboard/internal/romdb"
)

// MustOpenStore opens the rom store configured on cfg and registers its
// cleanup with the test.
func MustOpenStore(t testing.TB, cfg *config.Config) *romdb.Store {
	t.Helper()

	store, err := romdb.Open(cfg.Paths.RomDBPath)
	if err != nil {
		t.Fatalf("open rom store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
