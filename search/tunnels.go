package search

import "github.com/bertbaron/sokovsolve/level"

// TunnelKey identifies a cell plus the push direction it can be
// chained along.
type TunnelKey struct {
	Pos level.Position
	Dir level.Direction
}

// TunnelSet is the set of (cell, direction) pairs marking a push that
// arrives at the tunnel's mouth as chainable without enqueuing
// intermediate states.
type TunnelSet map[TunnelKey]struct{}

// NewTunnelSet computes the tunnel set for lvl per §4.4: for each
// interior floor cell and each axis, if both neighbors along that
// axis are walls, the cell is a tunnel cell along both directions of
// the perpendicular axis (a push traveling along the free axis may be
// chained through it).
func NewTunnelSet(lvl *level.Level) TunnelSet {
	set := make(TunnelSet)
	lvl.InteriorCells(func(p level.Position) {
		if !lvl.TileAt(p).Has(level.Floor) {
			return
		}
		for _, axis := range level.Axes {
			n0 := p.Add(axis[0].Vector())
			n1 := p.Add(axis[1].Vector())
			if !lvl.TileAt(n0).Has(level.Wall) || !lvl.TileAt(n1).Has(level.Wall) {
				continue
			}
			// Walls flank the axis perpendicular to pushes travelling
			// along the *other* axis, so a box pushed along the other
			// axis through p may be chained.
			perp := perpendicularAxis(axis)
			set[TunnelKey{p, perp[0]}] = struct{}{}
			set[TunnelKey{p, perp[1]}] = struct{}{}
		}
	})
	return set
}

func perpendicularAxis(axis [2]level.Direction) [2]level.Direction {
	if axis == level.Axes[0] {
		return level.Axes[1]
	}
	return level.Axes[0]
}

// Contains reports whether a push in direction dir chains through
// pos.
func (t TunnelSet) Contains(pos level.Position, dir level.Direction) bool {
	_, ok := t[TunnelKey{pos, dir}]
	return ok
}
