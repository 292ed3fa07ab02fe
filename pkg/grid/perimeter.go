package grid

// PerimeterEdges computes the exposed boundary of a hull. For every
// hull tile and every cardinal direction, an edge is emitted iff the
// neighbor in that direction is not part of the hull. Each tile is
// tested independently against its four neighbors, so the result does
// not depend on traversal order and costs O(tiles).
//
// An isolated tile contributes exactly 4 edges; two tiles sharing an
// orthogonal side each suppress the one shared edge. Output order is
// unspecified.
func PerimeterEdges(hull HullSet) []PerimeterEdge {
	edges := make([]PerimeterEdge, 0, len(hull))
	for p := range hull {
		for _, d := range Directions {
			if !hull.Contains(p.Neighbor(d)) {
				edges = append(edges, PerimeterEdge{Pos: p, Dir: d})
			}
		}
	}
	return edges
}

// IsInnerHullTile reports whether (x, y) is a hull tile fully enclosed
// by hull neighbors on all four sides. Positions outside the hull set
// are never inner. A tile is inner exactly when it contributes zero
// perimeter edges.
func IsInnerHullTile(hull HullSet, x, y int) bool {
	p := Position{X: x, Y: y}
	if !hull.Contains(p) {
		return false
	}
	for _, d := range Directions {
		if !hull.Contains(p.Neighbor(d)) {
			return false
		}
	}
	return true
}
