// Package editor applies single-game edits to a metadata file in place.
// Edits parse the whole file, modify one game, and rewrite the canonical
// form, guarded by a file lock so concurrent invocations never interleave
// a read-modify-write.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"

	"pegboard/internal/fileutil"
	"pegboard/internal/metadata"
)

// lockRetryDelay paces lock acquisition attempts while another edit holds
// the file.
const lockRetryDelay = 100 * time.Millisecond

// ErrNoTitle is returned when an update would create a game without a
// title.
var ErrNoTitle = errors.New("a new game needs a title")

// Update describes one upsert. Rom is the match key; Title is the
// fallback match key and the title for a newly created game. Nil field
// pointers leave the existing value untouched.
type Update struct {
	Rom         string
	Title       string
	SortBy      *string
	Developer   *string
	Description *string
	Launch      *string
	AddRoms     []string
}

// Upsert applies the update to the metadata file at path, creating the
// file or the game when absent. Reports whether a new game was created.
func Upsert(ctx context.Context, path string, update Update) (bool, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return false, fmt.Errorf("acquire metadata lock: %w", err)
	}
	if !ok {
		return false, errors.New("metadata file is locked by another edit")
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	header, games, err := metadata.ParseFile(path)
	switch {
	case err == nil:
		// The file is hand-maintained; keep the pre-edit text around.
		if err := fileutil.CopyFile(path, path+".bak"); err != nil {
			return false, fmt.Errorf("back up metadata: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return false, err
	}

	idx := findGame(games, update)
	created := idx < 0
	if created {
		if update.Title == "" {
			return false, ErrNoTitle
		}
		game := metadata.Game{Title: update.Title}
		if update.Rom != "" {
			game.File = update.Rom
			game.Roms = []string{update.Rom}
		}
		games = append(games, game)
		idx = len(games) - 1
	}

	apply(&games[idx], update)

	if err := metadata.WriteFile(path, header, games); err != nil {
		return false, err
	}
	return created, nil
}

// findGame matches by rom path first; a rename keeps working as long as
// the rom is stable. Title is the fallback for games with no roms yet.
func findGame(games []metadata.Game, update Update) int {
	if update.Rom != "" {
		for i := range games {
			for _, rom := range games[i].Roms {
				if rom == update.Rom {
					return i
				}
			}
		}
	}
	if update.Title != "" {
		for i := range games {
			if games[i].Title == update.Title {
				return i
			}
		}
	}
	return -1
}

func apply(g *metadata.Game, update Update) {
	if update.Title != "" {
		g.Title = update.Title
	}
	if update.SortBy != nil {
		g.SortBy = *update.SortBy
	}
	if update.Developer != nil {
		g.Developer = *update.Developer
	}
	if update.Description != nil {
		g.Description = *update.Description
	}
	if update.Launch != nil {
		g.Launch = *update.Launch
	}
	for _, rom := range update.AddRoms {
		if rom == "" || hasRom(g.Roms, rom) {
			continue
		}
		g.Roms = append(g.Roms, rom)
		if g.File == "" {
			g.File = rom
		}
	}
}

func hasRom(roms []string, rom string) bool {
	for _, existing := range roms {
		if existing == rom {
			return true
		}
	}
	return false
}
