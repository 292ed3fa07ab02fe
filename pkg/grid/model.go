package grid

import "sort"

// ShipMetadata describes one ship node from a save archive.
type ShipMetadata struct {
	ID          string // Save-assigned ship identifier
	Name        string // Display name
	Width       int    // Declared width in tiles
	Height      int    // Declared height in tiles
	PlayerOwned bool   // Player-controlled and not a derelict
}

// TileElement is one raw tile entry from a save archive, consumed by
// the converter. Multi is resolved once at parse time: it is true iff
// the source node carried an occupancy cell list, and Cells then holds
// every cell the structure instance covers.
type TileElement struct {
	Pos      Position
	TypeCode int
	Rot      Rotation
	Multi    bool
	Cells    []Position
}

// HullSet is a duplicate-free set of hull tile positions. Presence is
// the only attribute a hull tile carries.
type HullSet map[Position]struct{}

// NewHullSet returns an empty hull set.
func NewHullSet() HullSet {
	return make(HullSet)
}

// Add records a position. Adding an existing position is a no-op.
func (s HullSet) Add(p Position) {
	s[p] = struct{}{}
}

// Contains reports whether the position is part of the hull.
func (s HullSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of hull tiles.
func (s HullSet) Len() int {
	return len(s)
}

// Positions returns the hull tiles sorted by (y, x) so that callers
// serializing the set get a stable order.
func (s HullSet) Positions() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// PlacedStructure is one resolved structure instance on the grid.
// Pos is always the minimum (x, y) over the structure's footprint,
// regardless of rotation. SourceLayer and SourceGroup are provenance
// carried for round-tripping; nothing in the model reads them.
type PlacedStructure struct {
	ID          string
	TypeCode    int
	Category    string
	Pos         Position
	Rot         Rotation
	Layer       Layer
	SourceLayer string
	SourceGroup string
}

// WarningKind classifies a conversion warning.
type WarningKind string

// Warning kinds.
const (
	WarnUnknownStructure WarningKind = "unknown_structure"
	WarnParseError       WarningKind = "parse_error"
	WarnBoundsExceeded   WarningKind = "bounds_exceeded"
)

// ConversionWarning is one non-fatal anomaly reported by the
// converter. TypeCode and Count are optional numeric context; zero
// means not applicable.
type ConversionWarning struct {
	Kind     WarningKind
	Message  string
	TypeCode int
	Count    int
}

// ConversionStats summarizes one conversion run.
type ConversionStats struct {
	Elements     int // Tile elements seen in the input
	HullTiles    int // Hull tiles in the result
	Structures   int // Placed structures in the result
	Skipped      int // Structures explicitly skipped (reserved, always 0)
	UnknownCodes int // Distinct unrecognized type codes
}

// PerimeterEdge marks one exposed side of a hull tile: the neighbor
// in Dir is not part of the hull.
type PerimeterEdge struct {
	Pos Position
	Dir Direction
}
