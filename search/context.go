package search

import "github.com/bertbaron/sokovsolve/level"

// deadLowerBound is the sentinel lower-bound value used for a state
// where some box sits on a cell the LowerBoundTable has no entry for
// (an unreachable or dead cell). It is kept one below maxActionCount
// so it still satisfies the "lower_bound < 10,000" invariant the
// heuristic constants assume.
const deadLowerBound = maxActionCount - 1

// Context bundles the read-only tables a solve computes once and
// shares across every State: the level itself, the per-cell lower
// bound table, and the tunnel set. States borrow it by pointer; it is
// never mutated once a Solver starts searching.
type Context struct {
	Level       *level.Level
	LowerBounds LowerBoundTable
	Tunnels     TunnelSet
	Strategy    Strategy
}

// NewContext builds the shared, read-only tables for lvl once.
func NewContext(lvl *level.Level, strategy Strategy) *Context {
	return &Context{
		Level:       lvl,
		LowerBounds: NewLowerBoundTable(lvl),
		Tunnels:     NewTunnelSet(lvl),
		Strategy:    strategy,
	}
}

// canBlockPlayer reports whether position blocks player movement:
// a wall, or a cell currently occupied by a box.
func (c *Context) canBlockPlayer(pos level.Position, boxes BoxSet) bool {
	return c.Level.TileAt(pos).Has(level.Wall) || boxes.Contains(pos)
}

// canBlockCrate reports whether position blocks a box being pushed
// into it: a wall, a cell with no lower-bound entry (a dead cell no
// box may ever occupy), or a cell already holding another box.
func (c *Context) canBlockCrate(pos level.Position, boxes BoxSet) bool {
	if c.Level.TileAt(pos).Has(level.Wall) {
		return true
	}
	if _, ok := c.LowerBounds[pos]; !ok {
		return true
	}
	return boxes.Contains(pos)
}
