package frontends

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path/filepath"

	"pegboard/internal/fileutil"
	"pegboard/internal/jsondb"
	"pegboard/internal/metadata"
)

// esdeGame mirrors one <game> element of an ES-DE gamelist.xml.
type esdeGame struct {
	XMLName   xml.Name `xml:"game"`
	Path      string   `xml:"path"`
	Name      string   `xml:"name"`
	SortName  string   `xml:"sortname,omitempty"`
	Desc      string   `xml:"desc,omitempty"`
	Developer string   `xml:"developer,omitempty"`
	Image     string   `xml:"image,omitempty"`
	Marquee   string   `xml:"marquee,omitempty"`
	Video     string   `xml:"video,omitempty"`
}

type esdeGameList struct {
	XMLName xml.Name   `xml:"gameList"`
	Games   []esdeGame `xml:"game"`
}

// WriteESDE writes the gamelist.xml for one payload under
// outRoot/esde/<key>/ and returns the written path.
func WriteESDE(payload jsondb.Platform, outRoot string) (string, error) {
	list := esdeGameList{Games: make([]esdeGame, 0, len(payload.Games))}
	for _, g := range payload.Games {
		list.Games = append(list.Games, esdeGame{
			Path:      "./" + g.File,
			Name:      g.Title,
			SortName:  g.SortBy,
			Desc:      g.Description,
			Developer: g.Developer,
			Image:     relativeAsset(g.Assets[metadata.AssetBoxFront]),
			Marquee:   relativeAsset(g.Assets[metadata.AssetLogo]),
			Video:     relativeAsset(g.Assets[metadata.AssetVideo]),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(list); err != nil {
		return "", fmt.Errorf("encode gamelist: %w", err)
	}
	buf.WriteByte('\n')

	path := filepath.Join(outRoot, "esde", payload.Key, "gamelist.xml")
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func relativeAsset(asset string) string {
	if asset == "" {
		return ""
	}
	return "./" + asset
}
