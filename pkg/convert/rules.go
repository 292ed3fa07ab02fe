package convert

import "github.com/Faultbox/shipgrid/pkg/grid"

// Rules holds the game-data constants the converter consults: the
// empty-tile sentinel, the type codes treated as bare hull, and the
// per-layer default organizational group. They are injected rather
// than global so alternate game-data versions can be substituted
// without code changes.
type Rules struct {
	// EmptyTypeCode marks a tile node that carries no content.
	EmptyTypeCode int
	// HullTypeCodes are the codes recorded as hull tiles instead of
	// structures.
	HullTypeCodes []int
	// LayerGroups maps each rendering layer to the default group
	// identifier stamped on structures as provenance.
	LayerGroups map[grid.Layer]string
}

// DefaultRules returns the constants of the currently supported game
// data version.
func DefaultRules() Rules {
	return Rules{
		EmptyTypeCode: -1,
		HullTypeCodes: []int{1, 2}, // 1 = hull block, 2 = floor plating
		LayerGroups: map[grid.Layer]string{
			grid.LayerFloor:   "grp.floor",
			grid.LayerWall:    "grp.wall",
			grid.LayerObject:  "grp.object",
			grid.LayerOverlay: "grp.overlay",
		},
	}
}

// isHullCode reports whether the type code is one of the bare hull
// sentinels.
func (r Rules) isHullCode(code int) bool {
	for _, c := range r.HullTypeCodes {
		if c == code {
			return true
		}
	}
	return false
}

// layerGroup returns the default group identifier for a layer, or ""
// when the rules carry no mapping for it.
func (r Rules) layerGroup(l grid.Layer) string {
	return r.LayerGroups[l]
}
