// Package corepolicy decides which libretro core a game should run with
// and whether an entry is a rom hack. Policy lives entirely outside the
// parser and writer; both only carry the raw data the policy consumes.
package corepolicy

import (
	"strings"

	"pegboard/internal/config"
)

// Policy resolves cores from the configured lookup tables.
type Policy struct {
	platform  map[string]string
	extension map[string]string
	keywords  []string
}

// New builds a policy from the config's core tables and hack keywords.
func New(cfg *config.Config) *Policy {
	return &Policy{
		platform:  cfg.Cores.Platform,
		extension: cfg.Cores.Extension,
		keywords:  cfg.Descriptions.HackKeywords,
	}
}

// Core resolves the core for one game. Precedence: the game's own launch
// override, the platform payload's default core, the configured platform
// table, the configured extension table. Empty when nothing matches.
func (p *Policy) Core(platformKey, gameCore, defaultCore, romPath string) string {
	if gameCore != "" {
		return gameCore
	}
	if defaultCore != "" {
		return defaultCore
	}
	if core, ok := p.platform[platformKey]; ok && core != "" {
		return core
	}
	if core, ok := p.extension[extension(romPath)]; ok {
		return core
	}
	return ""
}

// IsHack reports whether an entry is a rom hack: platforms keyed with a
// _hack suffix are hack collections wholesale, otherwise the title and rom
// path are matched against the configured keywords.
func (p *Policy) IsHack(platformKey, title, romPath string) bool {
	if strings.HasSuffix(platformKey, "_hack") {
		return true
	}
	title = strings.ToLower(title)
	romPath = strings.ToLower(romPath)
	for _, keyword := range p.keywords {
		keyword = strings.ToLower(keyword)
		if keyword == "" {
			continue
		}
		if strings.Contains(title, keyword) || strings.Contains(romPath, keyword) {
			return true
		}
	}
	return false
}

// extension returns the lowercase rom extension with the leading dot, the
// form the config table uses.
func extension(romPath string) string {
	idx := strings.LastIndexByte(romPath, '.')
	if idx < 0 || strings.ContainsAny(romPath[idx:], "/\\") {
		return ""
	}
	return strings.ToLower(romPath[idx:])
}
