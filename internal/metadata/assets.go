package metadata

import (
	"sort"
	"strings"
)

// Metadata paths always use forward slashes regardless of host platform,
// so asset helpers work on string segments rather than path/filepath.

// defaultAssets builds the conventional asset map for a game that declares
// none: media/<title>/<kind filename>.
func defaultAssets(title string) map[string]string {
	assets := make(map[string]string, len(assetDefaultFiles))
	for kind, file := range assetDefaultFiles {
		assets[kind] = "media/" + title + "/" + file
	}
	return assets
}

// leadingSegment returns the first path segment of a relative path, or ""
// when the path has no directory component.
func leadingSegment(p string) string {
	idx := strings.IndexByte(p, '/')
	if idx <= 0 {
		return ""
	}
	return p[:idx]
}

// baseName returns the last path segment.
func baseName(p string) string {
	if idx := strings.LastIndexByte(p, '/'); idx >= 0 {
		return p[idx+1:]
	}
	return p
}

// rewriteAssetPath relocates an asset into the media directory named after
// the shared rom directory. Multi-disc games keep their assets next to the
// disc set rather than under a title-derived directory, so renaming a game
// never orphans its media. The asset's file name is preserved.
func rewriteAssetPath(asset string, roms []string) string {
	if asset == "" || len(roms) == 0 {
		return asset
	}
	shared := leadingSegment(roms[0])
	if shared == "" {
		return asset
	}
	return "media/" + shared + "/" + baseName(asset)
}

// assetKinds returns the asset kinds of a game in canonical emission
// order: the conventional kinds first, then any extra kinds sorted.
func assetKinds(assets map[string]string) []string {
	kinds := make([]string, 0, len(assets))
	for _, kind := range []string{AssetBoxFront, AssetLogo, AssetVideo} {
		if _, ok := assets[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	var extras []string
	for kind := range assets {
		switch kind {
		case AssetBoxFront, AssetLogo, AssetVideo:
		default:
			extras = append(extras, kind)
		}
	}
	sort.Strings(extras)
	return append(kinds, extras...)
}
