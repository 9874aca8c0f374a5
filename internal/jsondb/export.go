package jsondb

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/google/uuid"

	"pegboard/internal/launch"
	"pegboard/internal/library"
	"pegboard/internal/metadata"
)

// Export parses a platform's metadata file and writes its payload under
// dir. Ids of games already present in an existing payload are preserved,
// matched by title and primary rom path, so re-exporting never invalidates
// outstanding description patches.
func Export(platform library.Platform, dir string) (Platform, error) {
	header, games, err := metadata.ParseFile(platform.MetadataPath)
	if err != nil {
		return Platform{}, err
	}

	previous, err := Load(PathFor(dir, platform.Key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Platform{}, err
	}
	ids := make(map[gameIdentity]string, len(previous.Games))
	for _, g := range previous.Games {
		ids[gameIdentity{g.Title, g.File}] = g.ID
	}

	payload := FromMetadata(platform, header, games)
	for i := range payload.Games {
		g := &payload.Games[i]
		if id, ok := ids[gameIdentity{g.Title, g.File}]; ok {
			g.ID = id
		} else {
			g.ID = uuid.NewString()
		}
		// Descriptions survive a re-export when the source text has none;
		// the patch cycle writes them into the payload, not the source.
		if g.Description == "" {
			if prev := previousGame(previous.Games, g.ID); prev != nil {
				g.Description = prev.Description
			}
		}
	}

	if _, err := Save(dir, payload); err != nil {
		return Platform{}, err
	}
	return payload, nil
}

// FromMetadata maps a parsed collection to its payload form without
// touching ids or disk.
func FromMetadata(platform library.Platform, header metadata.Header, games []metadata.Game) Platform {
	payload := Platform{
		SchemaVersion: SchemaVersion,
		Key:           platform.Key,
		Platform:      platform.Name,
		Collection:    header.Collection,
		DefaultSortBy: header.SortBy,
		LaunchBlock:   header.Launch,
		IgnoreFiles:   header.IgnoreFiles,
		Extensions:    header.Extensions,
		DefaultCore:   launch.ExtractCore(header.Launch),
		Games:         make([]Game, 0, len(games)),
	}

	for i := range games {
		g := &games[i]
		entry := Game{
			Title:        g.Title,
			File:         g.File,
			Roms:         g.Roms,
			SortBy:       g.SortBy,
			Developer:    g.Developer,
			Description:  g.Description,
			CoreOverride: g.CoreOverride,
			Assets:       g.Assets,
			Extra:        g.Extra,
		}
		if overridden(g.Launch, header.Launch) {
			entry.LaunchOverride = g.Launch
		}
		payload.Games = append(payload.Games, entry)
	}
	return payload
}

type gameIdentity struct {
	Title string
	File  string
}

func previousGame(games []Game, id string) *Game {
	for i := range games {
		if games[i].ID == id {
			return &games[i]
		}
	}
	return nil
}

func overridden(game, header string) bool {
	trimmed := strings.TrimSpace(game)
	return trimmed != "" && trimmed != strings.TrimSpace(header)
}
