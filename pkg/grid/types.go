// Package grid defines the normalized grid model produced by save
// conversion: positions, rotations, hull tiles, placed structures,
// grid presets and the hull perimeter geometry.
package grid

import "fmt"

// Position is a tile coordinate. Coordinates may be negative; save
// files are free to place ships anywhere on the plane.
type Position struct {
	X int
	Y int
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rotation is one of the four cardinal orientations a structure can
// be placed in, counted in quarter turns clockwise.
type Rotation int

// Rotation constants.
const (
	Rot0   Rotation = 0 // Facing up / unrotated
	Rot90  Rotation = 1 // Quarter turn clockwise
	Rot180 Rotation = 2 // Half turn
	Rot270 Rotation = 3 // Quarter turn counter-clockwise
)

// String returns the rotation in degrees.
func (r Rotation) String() string {
	switch r {
	case Rot0:
		return "0"
	case Rot90:
		return "90"
	case Rot180:
		return "180"
	case Rot270:
		return "270"
	default:
		return fmt.Sprintf("Invalid(%d)", int(r))
	}
}

// NormalizeRotation clamps an arbitrary quarter-turn count from a save
// file into a valid Rotation. Negative counts wrap the same way the
// game wraps them.
func NormalizeRotation(turns int) Rotation {
	turns %= 4
	if turns < 0 {
		turns += 4
	}
	return Rotation(turns)
}

// Direction is one of the four cardinal neighbor directions of a tile.
type Direction int

// Direction constants, clockwise from north. North is negative Y: the
// grid uses screen coordinates with Y growing downward.
const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four cardinal directions in a fixed order.
var Directions = [4]Direction{North, East, South, West}

// Offset returns the coordinate delta one step in the direction.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// Neighbor returns the position one step from p in the direction.
func (p Position) Neighbor(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Layer is the rendering layer a placed structure is drawn on.
type Layer int

// Layer constants, back to front.
const (
	LayerFloor   Layer = iota // Flooring and carpets
	LayerWall                 // Walls, doors, windows
	LayerObject               // Furniture and machinery
	LayerOverlay              // Pipes, wiring, markers
)

// String returns a human-readable layer name.
func (l Layer) String() string {
	switch l {
	case LayerFloor:
		return "floor"
	case LayerWall:
		return "wall"
	case LayerObject:
		return "object"
	case LayerOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("Unknown(%d)", int(l))
	}
}
