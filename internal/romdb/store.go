// Package romdb records the on-disk state of every rom referenced by the
// collection payloads: whether the file exists, its size, and its content
// hashes. The store backs integrity reports and duplicate detection across
// platforms.
package romdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages rom scan persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the rom database and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create romdb directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record is one rom file's scan result.
type Record struct {
	ID          int64
	PlatformKey string
	GameID      string
	RomPath     string
	Found       bool
	Size        int64
	SHA256      string
	MD5Header   string
	ScannedAt   time.Time
}

// Upsert inserts or refreshes the record for one rom path.
func (s *Store) Upsert(ctx context.Context, record Record) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO rom_files (
            platform_key, game_id, rom_path, found, size, sha256, md5_header, scanned_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(platform_key, rom_path) DO UPDATE SET
            game_id = excluded.game_id,
            found = excluded.found,
            size = excluded.size,
            sha256 = excluded.sha256,
            md5_header = excluded.md5_header,
            scanned_at = excluded.scanned_at`,
		record.PlatformKey,
		record.GameID,
		record.RomPath,
		record.Found,
		record.Size,
		record.SHA256,
		record.MD5Header,
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("upsert rom record: %w", err)
	}
	return nil
}

// ByPlatform returns every record for a platform, ordered by rom path.
func (s *Store) ByPlatform(ctx context.Context, platformKey string) ([]Record, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, platform_key, game_id, rom_path, found, size, sha256, md5_header, scanned_at
         FROM rom_files WHERE platform_key = ? ORDER BY rom_path`,
		platformKey,
	)
	if err != nil {
		return nil, fmt.Errorf("query rom records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var scannedAt string
		if err := rows.Scan(
			&record.ID,
			&record.PlatformKey,
			&record.GameID,
			&record.RomPath,
			&record.Found,
			&record.Size,
			&record.SHA256,
			&record.MD5Header,
			&scannedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rom record: %w", err)
		}
		record.ScannedAt, _ = time.Parse(time.RFC3339Nano, scannedAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rom records: %w", err)
	}
	return records, nil
}

// PlatformSummary counts scanned and found roms for one platform.
func (s *Store) PlatformSummary(ctx context.Context, platformKey string) (total, found int, err error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1), COALESCE(SUM(found), 0) FROM rom_files WHERE platform_key = ?`,
		platformKey,
	)
	if err := row.Scan(&total, &found); err != nil {
		return 0, 0, fmt.Errorf("scan platform summary: %w", err)
	}
	return total, found, nil
}

// Duplicates returns groups of found roms sharing a sha256 across the
// whole database, for duplicate triage.
func (s *Store) Duplicates(ctx context.Context) (map[string][]Record, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, platform_key, game_id, rom_path, found, size, sha256, md5_header, scanned_at
         FROM rom_files
         WHERE found = 1 AND sha256 != '' AND sha256 IN (
             SELECT sha256 FROM rom_files WHERE found = 1 AND sha256 != ''
             GROUP BY sha256 HAVING COUNT(1) > 1
         )
         ORDER BY sha256, platform_key, rom_path`,
	)
	if err != nil {
		return nil, fmt.Errorf("query duplicates: %w", err)
	}
	defer rows.Close()

	groups := make(map[string][]Record)
	for rows.Next() {
		var record Record
		var scannedAt string
		if err := rows.Scan(
			&record.ID,
			&record.PlatformKey,
			&record.GameID,
			&record.RomPath,
			&record.Found,
			&record.Size,
			&record.SHA256,
			&record.MD5Header,
			&scannedAt,
		); err != nil {
			return nil, fmt.Errorf("scan duplicate record: %w", err)
		}
		record.ScannedAt, _ = time.Parse(time.RFC3339Nano, scannedAt)
		groups[record.SHA256] = append(groups[record.SHA256], record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate duplicates: %w", err)
	}
	return groups, nil
}
