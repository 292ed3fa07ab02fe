// Package convert turns one parsed ship plus a structure catalog into
// the normalized grid model: hull tiles, placed structures, warnings
// and statistics. Conversion is deterministic for identical inputs
// (only the generated structure identifiers differ) and performs no
// I/O.
package convert

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Faultbox/shipgrid/pkg/catalog"
	"github.com/Faultbox/shipgrid/pkg/grid"
	"github.com/Faultbox/shipgrid/pkg/save"
)

// Result is the grid model produced from one ship.
type Result struct {
	Preset     grid.GridPreset
	GridWidth  int
	GridHeight int
	Hull       grid.HullSet
	Structures []grid.PlacedStructure
	Warnings   []grid.ConversionWarning
	Stats      grid.ConversionStats
}

// dedupeKey identifies one physical structure instance. Save archives
// may list overlapping occupancy records for the same structure; the
// rotation-invariant anchor plus the type code collapses them.
type dedupeKey struct {
	code   int
	anchor grid.Position
}

// Convert classifies every tile element of a ship against the catalog
// and emits the grid model. Every element lands in exactly one bucket:
// discarded empty, hull tile, resolved structure, or unknown (counted
// and degraded per the rules below).
func Convert(ship grid.ShipMetadata, elements []grid.TileElement, cat *catalog.Catalog, rules Rules) *Result {
	preset := grid.FitPreset(ship.Width, ship.Height)
	res := &Result{
		Preset:     preset,
		GridWidth:  preset.Width,
		GridHeight: preset.Height,
		Hull:       grid.NewHullSet(),
	}

	index := cat.Index()
	unknown := make(map[int]int)
	seen := make(map[dedupeKey]struct{})

	for _, el := range elements {
		if el.TypeCode == rules.EmptyTypeCode {
			continue
		}
		if rules.isHullCode(el.TypeCode) {
			res.Hull.Add(el.Pos)
			continue
		}

		entry, known := index[el.TypeCode]
		if !known {
			unknown[el.TypeCode]++
			// A single unknown tile still carries hull; a multi-tile
			// footprint cannot be safely inferred and is dropped.
			if !el.Multi {
				res.Hull.Add(el.Pos)
			}
			continue
		}

		key := dedupeKey{code: el.TypeCode, anchor: anchorOf(el)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		res.Structures = append(res.Structures, grid.PlacedStructure{
			ID:          uuid.NewString(),
			TypeCode:    el.TypeCode,
			Category:    entry.CategoryID,
			Pos:         key.anchor,
			Rot:         el.Rot,
			Layer:       entry.Layer,
			SourceLayer: entry.Layer.String(),
			SourceGroup: rules.layerGroup(entry.Layer),
		})
	}

	res.Warnings = compileWarnings(ship, preset, unknown)
	res.Stats = grid.ConversionStats{
		Elements:     len(elements),
		HullTiles:    res.Hull.Len(),
		Structures:   len(res.Structures),
		Skipped:      0, // reserved
		UnknownCodes: len(unknown),
	}
	return res
}

// ConvertShip looks the ship up in a parsed document and converts it.
// ok is false when the document holds no ship with that identifier.
func ConvertShip(doc *save.Document, shipID string, cat *catalog.Catalog, rules Rules) (*Result, bool) {
	meta, elements, ok := doc.Ship(shipID)
	if !ok {
		return nil, false
	}
	return Convert(meta, elements, cat, rules), true
}

// anchorOf returns the canonical placement origin of an element. For
// multi-tile structures this is the minimum x and minimum y over the
// occupied cells, not the element's own reported position: the source
// reference point shifts with rotation, the bounding-box origin does
// not.
func anchorOf(el grid.TileElement) grid.Position {
	if !el.Multi || len(el.Cells) == 0 {
		return el.Pos
	}
	anchor := el.Cells[0]
	for _, c := range el.Cells[1:] {
		if c.X < anchor.X {
			anchor.X = c.X
		}
		if c.Y < anchor.Y {
			anchor.Y = c.Y
		}
	}
	return anchor
}

// compileWarnings aggregates the per-run anomalies into at most one
// warning per kind.
func compileWarnings(ship grid.ShipMetadata, preset grid.GridPreset, unknown map[int]int) []grid.ConversionWarning {
	var warnings []grid.ConversionWarning

	if len(unknown) > 0 {
		total := 0
		code := 0
		for c, n := range unknown {
			total += n
			code = c
		}
		w := grid.ConversionWarning{
			Kind:    grid.WarnUnknownStructure,
			Message: fmt.Sprintf("%d tiles reference %d unknown structure type(s); kept as hull where possible", total, len(unknown)),
			Count:   total,
		}
		// With one distinct code the warning can name it.
		if len(unknown) == 1 {
			w.TypeCode = code
		}
		warnings = append(warnings, w)
	}

	if ship.Width > preset.Width || ship.Height > preset.Height {
		warnings = append(warnings, grid.ConversionWarning{
			Kind: grid.WarnBoundsExceeded,
			Message: fmt.Sprintf("ship is %dx%d but the largest grid is %dx%d (%s)",
				ship.Width, ship.Height, preset.Width, preset.Height, preset.Label),
		})
	}

	return warnings
}
