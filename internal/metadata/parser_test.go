package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dreamcastSample = `collection: Dreamcast
sort-by: dreamcast
launch:
  am start --user 0
  -e LIBRETRO /data/cores/flycast_libretro_android.so
  -e ROM {file.path}
ignore-files:
  *.srm
extension: chd, cue

game: Shenmue
file: Shenmue.chd
developer: Sega AM2
description:
  Yokosuka, 1986. Ryo Hazuki returns home to

  witness the murder of his father.
launch: retroarch -L "/path/cores/flycast_libretro.so" "%ROM%"
`

func TestParseHeader(t *testing.T) {
	header, games, err := Parse(strings.NewReader(dreamcastSample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if header.Collection != "Dreamcast" {
		t.Errorf("Collection = %q, want Dreamcast", header.Collection)
	}
	if header.SortBy != "dreamcast" {
		t.Errorf("SortBy = %q, want dreamcast", header.SortBy)
	}
	wantLaunch := "am start --user 0\n-e LIBRETRO /data/cores/flycast_libretro_android.so\n-e ROM {file.path}"
	if header.Launch != wantLaunch {
		t.Errorf("Launch = %q, want %q", header.Launch, wantLaunch)
	}
	if len(header.IgnoreFiles) != 1 || header.IgnoreFiles[0] != "*.srm" {
		t.Errorf("IgnoreFiles = %v", header.IgnoreFiles)
	}
	if len(header.Extensions) != 2 || header.Extensions[0] != "chd" || header.Extensions[1] != "cue" {
		t.Errorf("Extensions = %v", header.Extensions)
	}
	if len(games) != 1 {
		t.Fatalf("got %d games, want 1", len(games))
	}
}

func TestParseGame(t *testing.T) {
	_, games, err := Parse(strings.NewReader(dreamcastSample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("got %d games, want 1", len(games))
	}

	g := games[0]
	if g.Title != "Shenmue" {
		t.Errorf("Title = %q, want Shenmue", g.Title)
	}
	if g.File != "Shenmue.chd" {
		t.Errorf("File = %q, want Shenmue.chd", g.File)
	}
	if len(g.Roms) != 1 || g.Roms[0] != "Shenmue.chd" {
		t.Errorf("Roms = %v", g.Roms)
	}
	if g.Developer != "Sega AM2" {
		t.Errorf("Developer = %q", g.Developer)
	}
	// Blank lines inside a block are spacing, not terminators.
	wantDesc := "Yokosuka, 1986. Ryo Hazuki returns home to\nwitness the murder of his father."
	if g.Description != wantDesc {
		t.Errorf("Description = %q, want %q", g.Description, wantDesc)
	}
	if g.CoreOverride != "flycast_libretro.so" {
		t.Errorf("CoreOverride = %q, want flycast_libretro.so", g.CoreOverride)
	}
	if g.Assets[AssetBoxFront] != "media/Shenmue/boxfront.png" {
		t.Errorf("box front asset = %q", g.Assets[AssetBoxFront])
	}
}

func TestParseExtensionForms(t *testing.T) {
	inline := "collection: PSX\nextension: chd, .CUE, iso\n"
	block := "collection: PSX\nextensions:\n  chd\n  .CUE, iso\n"

	for _, input := range []string{inline, block} {
		header, _, err := Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		want := []string{"chd", "cue", "iso"}
		if len(header.Extensions) != len(want) {
			t.Fatalf("Extensions = %v, want %v", header.Extensions, want)
		}
		for i, ext := range want {
			if header.Extensions[i] != ext {
				t.Errorf("Extensions[%d] = %q, want %q", i, header.Extensions[i], ext)
			}
		}
	}
}

func TestParseRomForms(t *testing.T) {
	input := `game: Grandia
file: disc1.chd
file: disc2.chd

game: Resident Evil 2
files:
  re2/disc1.chd
  re2/disc2.chd
`
	_, games, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}

	if len(games[0].Roms) != 2 || games[0].Roms[1] != "disc2.chd" {
		t.Errorf("repeated file lines: Roms = %v", games[0].Roms)
	}
	if games[0].File != "disc1.chd" {
		t.Errorf("File = %q, want first rom", games[0].File)
	}
	if len(games[1].Roms) != 2 || games[1].Roms[0] != "re2/disc1.chd" {
		t.Errorf("files block: Roms = %v", games[1].Roms)
	}
	if !games[1].MultiDisc() {
		t.Error("expected MultiDisc")
	}
}

func TestParseDropsUntitledGame(t *testing.T) {
	input := `game:
file: orphan.chd

game: Kept
file: kept.chd
`
	_, games, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(games) != 1 || games[0].Title != "Kept" {
		t.Fatalf("games = %+v, want only Kept", games)
	}
}

func TestParseIrregularities(t *testing.T) {
	input := "\ufeff# library notes\r\n" +
		"// more notes\r\n" +
		"collection: Saturn\r\n" +
		"  stray continuation\r\n" +
		"not a key line because: of spaces\r\n" +
		"game: Panzer Dragoon\r\n" +
		"file: pd.chd\r\n"

	header, games, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if header.Collection != "Saturn" {
		t.Errorf("Collection = %q, want Saturn", header.Collection)
	}
	if len(games) != 1 || games[0].Title != "Panzer Dragoon" {
		t.Fatalf("games = %+v", games)
	}
}

func TestParseExtraAndAssetKeys(t *testing.T) {
	input := `game: Ikaruga
file: ikaruga.chd
publisher: Treasure
release: 2002-09-05
custom-unknown: dropped
assets.box-front: media/Ikaruga/front.jpg
assets.logo: media/Ikaruga/logo.png
`
	_, games, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g := games[0]
	if g.Extra["publisher"] != "Treasure" {
		t.Errorf("Extra[publisher] = %q", g.Extra["publisher"])
	}
	if g.Extra["release"] != "2002-09-05" {
		t.Errorf("Extra[release] = %q", g.Extra["release"])
	}
	if _, ok := g.Extra["custom_unknown"]; ok {
		t.Error("unmodeled key must be dropped")
	}
	if g.Assets["box_front"] != "media/Ikaruga/front.jpg" {
		t.Errorf("Assets[box_front] = %q", g.Assets["box_front"])
	}
	if g.Assets[AssetLogo] != "media/Ikaruga/logo.png" {
		t.Errorf("Assets[logo] = %q", g.Assets[AssetLogo])
	}
	// Declared assets suppress the defaults entirely.
	if _, ok := g.Assets[AssetVideo]; ok {
		t.Error("video default must not be added alongside declared assets")
	}
}

func TestParseEmptyInput(t *testing.T) {
	header, games, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if header.IgnoreFiles == nil || header.Extensions == nil {
		t.Error("header slices must be non-nil after a parse")
	}
	if len(games) != 0 {
		t.Errorf("games = %v", games)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.pegasus.txt")
	if err := os.WriteFile(path, []byte(dreamcastSample), 0o644); err != nil {
		t.Fatal(err)
	}

	header, games, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if header.Collection != "Dreamcast" || len(games) != 1 {
		t.Errorf("unexpected parse result: %q, %d games", header.Collection, len(games))
	}

	if _, _, err := ParseFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
