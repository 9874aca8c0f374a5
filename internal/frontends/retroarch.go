package frontends

import (
	"fmt"
	"path/filepath"
	"strings"

	"pegboard/internal/corepolicy"
	"pegboard/internal/fileutil"
	"pegboard/internal/jsondb"
	"pegboard/internal/textutil"
)

// WriteRetroArch writes per-game core override files under
// outRoot/retroarch/<core>/. Only games whose resolved core differs from
// the platform default get a file; the default needs no override. Returns
// the number of files written.
func WriteRetroArch(payload jsondb.Platform, policy *corepolicy.Policy, outRoot string) (int, error) {
	written := 0
	for _, g := range payload.Games {
		core := policy.Core(payload.Key, g.CoreOverride, payload.DefaultCore, g.File)
		if core == "" || core == payload.DefaultCore {
			continue
		}

		name := overrideFileName(g)
		if name == "" {
			continue
		}
		path := filepath.Join(outRoot, "retroarch", coreDirName(core), name+".cfg")
		content := fmt.Sprintf("libretro = %q\n", core)
		if err := fileutil.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
			return written, fmt.Errorf("write core override for %q: %w", g.Title, err)
		}
		written++
	}
	return written, nil
}

// overrideFileName derives the .cfg base name: RetroArch matches overrides
// by content file name, so the rom's base name wins over the game id.
func overrideFileName(g jsondb.Game) string {
	if g.File != "" {
		base := g.File
		if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
			base = base[idx+1:]
		}
		if idx := strings.LastIndexByte(base, '.'); idx > 0 {
			base = base[:idx]
		}
		return textutil.SanitizeFileName(base)
	}
	return g.ID
}

// coreDirName strips the loadable-module suffix so the directory matches
// the core name RetroArch reports.
func coreDirName(core string) string {
	for _, suffix := range []string{".so", ".dll", ".dylib"} {
		if strings.HasSuffix(core, suffix) {
			return strings.TrimSuffix(core, suffix)
		}
	}
	return core
}
