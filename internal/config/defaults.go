package config

const (
	defaultResourceRoot = "Resource"
	defaultJSONDBDir    = "jsondb"
	defaultCanonicalDir = "CanonicalMetadata"
	defaultFrontendDir  = "frontends"
	defaultRomDBPath    = "romdb/romhash.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultRawPath      = "descriptions_raw.jsonl"
	defaultPatchDir     = "descriptions_ai"
)

// Default returns a Config populated with repository defaults. The core
// tables mirror the library's historical platform and extension fallbacks;
// user config replaces them wholesale when the corresponding TOML table is
// present.
func Default() Config {
	return Config{
		Paths: Paths{
			ResourceRoot: defaultResourceRoot,
			JSONDBDir:    defaultJSONDBDir,
			CanonicalDir: defaultCanonicalDir,
			FrontendDir:  defaultFrontendDir,
			RomDBPath:    defaultRomDBPath,
		},
		Cores: Cores{
			Platform: map[string]string{
				"ss_hack": "mednafen_saturn_hw",
				"dc":      "flycast",
				"psx":     "pcsx_rearmed",
			},
			Extension: map[string]string{
				".chd": "mednafen_saturn_hw",
				".cue": "mednafen_psx_hw",
				".iso": "mednafen_saturn",
				".bin": "mednafen_psx_hw",
			},
		},
		Descriptions: Descriptions{
			RawPath:      defaultRawPath,
			PatchDir:     defaultPatchDir,
			HackKeywords: []string{"hack", "改版", "修正版"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
