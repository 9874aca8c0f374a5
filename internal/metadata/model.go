package metadata

// Asset kinds with a conventional on-disk filename. Additional kinds pass
// through the Assets map untouched.
const (
	AssetBoxFront = "box_front"
	AssetLogo     = "logo"
	AssetVideo    = "video"
)

// assetDefaultFiles maps each conventional asset kind to the filename used
// when a game block declares no assets of its own.
var assetDefaultFiles = map[string]string{
	AssetBoxFront: "boxfront.png",
	AssetLogo:     "logo.png",
	AssetVideo:    "video.mp4",
}

// Header holds the collection-wide defaults shared by every game in one
// metadata file.
type Header struct {
	// Collection is the display name of the collection.
	Collection string
	// SortBy is the default sort key applied to games without an override.
	SortBy string
	// Launch is the default launch command template, possibly multi-line.
	// Empty means no collection default.
	Launch string
	// IgnoreFiles lists filename patterns the frontend should skip.
	// Never nil after a parse.
	IgnoreFiles []string
	// Extensions lists lowercase rom file extensions without the leading
	// dot. Never nil after a parse.
	Extensions []string
}

// Game is one library entry. A Game only exists with a non-empty Title;
// the title is the block's key in the source text.
type Game struct {
	Title string
	// File is the primary rom path, always equal to Roms[0] when any rom
	// was declared.
	File string
	// Roms lists relative rom paths in declaration order. Duplicates are
	// preserved verbatim; exporters may deduplicate.
	Roms      []string
	SortBy    string
	Developer string
	// Description may span multiple lines.
	Description string
	// Launch is the per-game launch override block, verbatim. Empty means
	// the game inherits the header default.
	Launch string
	// CoreOverride is derived from Launch when it references a loadable
	// libretro core; it is never authored directly in the source text.
	CoreOverride string
	// Assets maps asset kind to a relative path. Defaulted from the title
	// when the source text declares none.
	Assets map[string]string
	// Extra holds recognized but unmodeled keys verbatim, with hyphens
	// normalized to underscores.
	Extra map[string]string
}

// MultiDisc reports whether the game spans more than one rom file.
func (g *Game) MultiDisc() bool {
	return len(g.Roms) > 1
}

// Clone returns a deep copy safe for downstream mutation.
func (g *Game) Clone() Game {
	clone := *g
	clone.Roms = append([]string(nil), g.Roms...)
	if g.Assets != nil {
		clone.Assets = make(map[string]string, len(g.Assets))
		for kind, path := range g.Assets {
			clone.Assets[kind] = path
		}
	}
	if g.Extra != nil {
		clone.Extra = make(map[string]string, len(g.Extra))
		for key, value := range g.Extra {
			clone.Extra[key] = value
		}
	}
	return clone
}
