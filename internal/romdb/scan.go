package romdb

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pegboard/internal/jsondb"
)

// Summary is the outcome of scanning one platform's rom list.
type Summary struct {
	PlatformKey string
	Total       int
	Found       int
	Missing     int
}

// Scan walks every rom referenced by the payload against romRoot, hashes
// the files that exist, and records the results. Missing files are
// recorded too; a missing rom is a finding, not an error.
func Scan(ctx context.Context, store *Store, payload jsondb.Platform, romRoot string, log *slog.Logger) (Summary, error) {
	summary := Summary{PlatformKey: payload.Key}

	for _, game := range payload.Games {
		for _, rom := range game.Roms {
			if rom == "" {
				continue
			}
			summary.Total++

			record := Record{
				PlatformKey: payload.Key,
				GameID:      game.ID,
				RomPath:     rom,
			}

			path := filepath.Join(romRoot, filepath.FromSlash(rom))
			switch _, err := os.Stat(path); {
			case err == nil:
				hashes, err := HashFile(path)
				if err != nil {
					return summary, fmt.Errorf("hash %s: %w", rom, err)
				}
				record.Found = true
				record.Size = hashes.Size
				record.SHA256 = hashes.SHA256
				record.MD5Header = hashes.MD5Header
				summary.Found++
			case os.IsNotExist(err):
				summary.Missing++
				log.Debug("rom missing", "platform", payload.Key, "rom", rom)
			default:
				return summary, fmt.Errorf("stat %s: %w", rom, err)
			}

			if err := store.Upsert(ctx, record); err != nil {
				return summary, err
			}
		}
	}

	log.Info("platform scanned",
		"platform", payload.Key,
		"total", summary.Total,
		"found", summary.Found,
		"missing", summary.Missing)
	return summary, nil
}
