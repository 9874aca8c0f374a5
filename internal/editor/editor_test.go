package editor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pegboard/internal/metadata"
)

func stringPtr(s string) *string { return &s }

func seedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.pegasus.txt")
	content := `collection: Dreamcast

game: Shenmue
file: Shenmue.chd
developer: Sega AM2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUpsertExistingByRom(t *testing.T) {
	path := seedFile(t)

	created, err := Upsert(context.Background(), path, Update{
		Rom:         "Shenmue.chd",
		Description: stringPtr("Yokosuka, 1986."),
		SortBy:      stringPtr("001"),
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created {
		t.Error("expected update, not creation")
	}

	_, games, err := metadata.ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 {
		t.Fatalf("got %d games", len(games))
	}
	g := games[0]
	if g.Description != "Yokosuka, 1986." || g.SortBy != "001" {
		t.Errorf("fields not applied: %+v", g)
	}
	if g.Developer != "Sega AM2" {
		t.Errorf("untouched field changed: %q", g.Developer)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("pre-edit backup missing: %v", err)
	}
}

func TestUpsertAddsRomsWithoutDuplicates(t *testing.T) {
	path := seedFile(t)

	_, err := Upsert(context.Background(), path, Update{
		Rom:     "Shenmue.chd",
		AddRoms: []string{"Shenmue.chd", "Shenmue disc2.chd"},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	_, games, err := metadata.ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(games[0].Roms) != 2 {
		t.Errorf("Roms = %v", games[0].Roms)
	}
	if !games[0].MultiDisc() {
		t.Error("expected multi-disc after adding a rom")
	}
}

func TestUpsertCreatesGame(t *testing.T) {
	path := seedFile(t)

	created, err := Upsert(context.Background(), path, Update{
		Rom:   "Ikaruga.chd",
		Title: "Ikaruga",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !created {
		t.Error("expected creation")
	}

	_, games, err := metadata.ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 2 || games[1].Title != "Ikaruga" || games[1].File != "Ikaruga.chd" {
		t.Errorf("games = %+v", games)
	}
}

func TestUpsertCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.pegasus.txt")

	created, err := Upsert(context.Background(), path, Update{
		Rom:   "pd.chd",
		Title: "Panzer Dragoon",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !created {
		t.Error("expected creation")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "game: Panzer Dragoon") {
		t.Errorf("content = %q", data)
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Error("lock file not cleaned up")
	}
}

func TestUpsertRequiresTitleForNewGame(t *testing.T) {
	path := seedFile(t)

	_, err := Upsert(context.Background(), path, Update{Rom: "unknown.chd"})
	if !errors.Is(err, ErrNoTitle) {
		t.Errorf("err = %v, want ErrNoTitle", err)
	}
}
