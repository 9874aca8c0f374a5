package jsondb

import (
	"path/filepath"

	"pegboard/internal/library"
	"pegboard/internal/metadata"
)

// Restore writes a payload back out as a canonical metadata file under
// outRoot/<key>/. It returns the written path.
func Restore(platform Platform, outRoot string) (string, error) {
	header, games := ToMetadata(platform)
	path := filepath.Join(outRoot, platform.Key, library.MetadataFileName)
	if err := metadata.WriteFile(path, header, games); err != nil {
		return "", err
	}
	return path, nil
}

// ToMetadata maps a payload back to the writer's value model. The inverse
// of FromMetadata up to the writer's own canonicalization.
func ToMetadata(platform Platform) (metadata.Header, []metadata.Game) {
	header := metadata.Header{
		Collection:  platform.Collection,
		SortBy:      platform.DefaultSortBy,
		Launch:      platform.LaunchBlock,
		IgnoreFiles: platform.IgnoreFiles,
		Extensions:  platform.Extensions,
	}

	games := make([]metadata.Game, 0, len(platform.Games))
	for _, g := range platform.Games {
		games = append(games, metadata.Game{
			Title:        g.Title,
			File:         g.File,
			Roms:         g.Roms,
			SortBy:       g.SortBy,
			Developer:    g.Developer,
			Description:  g.Description,
			Launch:       g.LaunchOverride,
			CoreOverride: g.CoreOverride,
			Assets:       g.Assets,
			Extra:        g.Extra,
		})
	}
	return header, games
}
