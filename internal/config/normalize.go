package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCores()
	c.normalizeDescriptions()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ResourceRoot) == "" {
		c.Paths.ResourceRoot = defaultResourceRoot
	}
	if c.Paths.ResourceRoot, err = expandPath(c.Paths.ResourceRoot); err != nil {
		return fmt.Errorf("paths.resource_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.JSONDBDir) == "" {
		c.Paths.JSONDBDir = defaultJSONDBDir
	}
	if c.Paths.JSONDBDir, err = expandPath(c.Paths.JSONDBDir); err != nil {
		return fmt.Errorf("paths.jsondb_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CanonicalDir) == "" {
		c.Paths.CanonicalDir = defaultCanonicalDir
	}
	if c.Paths.CanonicalDir, err = expandPath(c.Paths.CanonicalDir); err != nil {
		return fmt.Errorf("paths.canonical_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.FrontendDir) == "" {
		c.Paths.FrontendDir = defaultFrontendDir
	}
	if c.Paths.FrontendDir, err = expandPath(c.Paths.FrontendDir); err != nil {
		return fmt.Errorf("paths.frontend_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.RomDBPath) == "" {
		c.Paths.RomDBPath = defaultRomDBPath
	}
	if c.Paths.RomDBPath, err = expandPath(c.Paths.RomDBPath); err != nil {
		return fmt.Errorf("paths.romdb_path: %w", err)
	}
	if c.Paths.LogDir != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeCores() {
	platform := make(map[string]string, len(c.Cores.Platform))
	for key, core := range c.Cores.Platform {
		key = strings.ToLower(strings.TrimSpace(key))
		core = strings.TrimSpace(core)
		if key == "" || core == "" {
			continue
		}
		platform[key] = core
	}
	c.Cores.Platform = platform

	extension := make(map[string]string, len(c.Cores.Extension))
	for ext, core := range c.Cores.Extension {
		ext = strings.ToLower(strings.TrimSpace(ext))
		core = strings.TrimSpace(core)
		if ext == "" || core == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extension[ext] = core
	}
	c.Cores.Extension = extension
}

func (c *Config) normalizeDescriptions() {
	if strings.TrimSpace(c.Descriptions.RawPath) == "" {
		c.Descriptions.RawPath = defaultRawPath
	}
	if strings.TrimSpace(c.Descriptions.PatchDir) == "" {
		c.Descriptions.PatchDir = defaultPatchDir
	}
	keywords := make([]string, 0, len(c.Descriptions.HackKeywords))
	for _, kw := range c.Descriptions.HackKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	c.Descriptions.HackKeywords = keywords
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
