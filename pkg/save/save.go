// Package save parses ship save archives: XML documents describing
// one or more ships built from a tile grid. Only document-level
// malformation is fatal; individual nodes with missing or garbage
// attributes degrade to zero values so that one bad node never loses
// the rest of the archive.
package save

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"

	"github.com/Faultbox/shipgrid/pkg/grid"
)

// Save archive errors.
var (
	ErrMalformedArchive = errors.New("malformed save archive: not well-formed XML")
)

// Document is a parsed save archive.
type Document struct {
	Version string
	ships   []shipRecord
}

type shipRecord struct {
	meta     grid.ShipMetadata
	elements []grid.TileElement
}

// xmlDocument mirrors the archive's root container. The root element
// name is not checked; only the ship node shape matters.
type xmlDocument struct {
	Version string    `xml:"version,attr"`
	Ships   []xmlShip `xml:"ship"`
}

type xmlShip struct {
	SID      string    `xml:"sid,attr"`
	Name     string    `xml:"name,attr"`
	Width    string    `xml:"w,attr"`
	Height   string    `xml:"h,attr"`
	Owner    string    `xml:"owner,attr"`
	Derelict string    `xml:"derelict,attr"`
	Tiles    []xmlTile `xml:"tile"`
}

type xmlTile struct {
	X     string    `xml:"x,attr"`
	Y     string    `xml:"y,attr"`
	Type  string    `xml:"type,attr"`
	Rot   string    `xml:"rot,attr"`
	Cells []xmlCell `xml:"cell"`
}

type xmlCell struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
}

// Parse parses a save archive from raw XML bytes. An archive with
// zero ships is valid and yields an empty document.
func Parse(data []byte) (*Document, error) {
	var raw xmlDocument
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	}

	doc := &Document{
		Version: raw.Version,
		ships:   make([]shipRecord, 0, len(raw.Ships)),
	}
	for _, s := range raw.Ships {
		doc.ships = append(doc.ships, parseShip(s))
	}
	return doc, nil
}

// ParseFile reads a save archive from disk, transparently inflating
// gzip or zstd wrapped archives, and parses it.
func ParseFile(path string) (*Document, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// parseShip converts one ship node into its metadata and ordered
// tile elements.
func parseShip(s xmlShip) shipRecord {
	rec := shipRecord{
		meta: grid.ShipMetadata{
			ID:          s.SID,
			Name:        s.Name,
			Width:       atoiOr(s.Width, 0),
			Height:      atoiOr(s.Height, 0),
			PlayerOwned: s.Owner == "player" && !boolAttr(s.Derelict),
		},
	}
	rec.elements = make([]grid.TileElement, 0, len(s.Tiles))
	for _, t := range s.Tiles {
		rec.elements = append(rec.elements, parseTile(t))
	}
	return rec
}

// parseTile converts one tile node. Nested cell nodes are the
// occupancy of a multi-tile structure; they are attached to the
// owning element rather than emitted as elements of their own.
func parseTile(t xmlTile) grid.TileElement {
	el := grid.TileElement{
		Pos:      grid.Position{X: atoiOr(t.X, 0), Y: atoiOr(t.Y, 0)},
		TypeCode: atoiOr(t.Type, 0),
		Rot:      grid.NormalizeRotation(atoiOr(t.Rot, 0)),
	}
	if len(t.Cells) > 0 {
		el.Multi = true
		el.Cells = make([]grid.Position, 0, len(t.Cells))
		for _, c := range t.Cells {
			el.Cells = append(el.Cells, grid.Position{X: atoiOr(c.X, 0), Y: atoiOr(c.Y, 0)})
		}
	}
	return el
}

// Ships returns metadata for every ship in the archive, in document
// order.
func (d *Document) Ships() []grid.ShipMetadata {
	out := make([]grid.ShipMetadata, 0, len(d.ships))
	for _, s := range d.ships {
		out = append(out, s.meta)
	}
	return out
}

// PlayerShips returns the subset of ships that are clearly
// player-owned: marked player-controlled and not flagged as a
// derelict. Ships absent from this list are not invalid; they may
// simply be NPC-owned.
func (d *Document) PlayerShips() []grid.ShipMetadata {
	var out []grid.ShipMetadata
	for _, s := range d.ships {
		if s.meta.PlayerOwned {
			out = append(out, s.meta)
		}
	}
	return out
}

// ShipCount returns the number of ships in the archive.
func (d *Document) ShipCount() int {
	return len(d.ships)
}

// Ship returns the metadata and ordered tile elements of the ship
// with the given identifier. ok is false if no ship matches; an
// unknown or malformed identifier is not an error.
func (d *Document) Ship(id string) (meta grid.ShipMetadata, elements []grid.TileElement, ok bool) {
	for _, s := range d.ships {
		if s.meta.ID == id {
			return s.meta, s.elements, true
		}
	}
	return grid.ShipMetadata{}, nil, false
}

// ElementCount returns the number of tile elements recorded for the
// ship, or ok=false if the ship does not exist.
func (d *Document) ElementCount(id string) (int, bool) {
	for _, s := range d.ships {
		if s.meta.ID == id {
			return len(s.elements), true
		}
	}
	return 0, false
}

// atoiOr parses an integer attribute, falling back to def on missing
// or garbage values.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// boolAttr interprets the truthy attribute spellings save files use.
func boolAttr(s string) bool {
	return s == "1" || s == "true"
}
