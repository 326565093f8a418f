package search

import (
	"github.com/bertbaron/sokovsolve/level"
	"github.com/bertbaron/sokovsolve/pathfind"
)

// LowerBoundTable maps a non-deadlock floor cell to the length, in
// edges, of the grid-shortest path (boxes ignored, walls blocked) to
// its nearest target. Absence of a key marks a cell no box may ever
// occupy.
type LowerBoundTable map[level.Position]int

// NewLowerBoundTable builds the table once for lvl, per §4.3: for
// every interior Floor cell that is not a Deadlock cell, find the
// Manhattan-nearest target, then the actual shortest path length to
// it over walls-only blocking.
func NewLowerBoundTable(lvl *level.Level) LowerBoundTable {
	table := make(LowerBoundTable)
	blocked := func(p level.Position) bool {
		return lvl.TileAt(p).Has(level.Wall)
	}
	lvl.InteriorCells(func(p level.Position) {
		tile := lvl.TileAt(p)
		if !tile.Has(level.Floor) || tile.Has(level.Deadlock) {
			return
		}
		target, ok := nearestTargetByManhattan(p, lvl.Targets)
		if !ok {
			return
		}
		path, ok := pathfind.FindPath(p, target, blocked)
		if !ok {
			return
		}
		table[p] = len(path) - 1
	})
	return table
}

func nearestTargetByManhattan(from level.Position, targets []level.Position) (level.Position, bool) {
	best := -1
	var bestTarget level.Position
	for _, t := range targets {
		d := abs(t.X-from.X) + abs(t.Y-from.Y)
		if best == -1 || d < best {
			best = d
			bestTarget = t
		}
	}
	return bestTarget, best != -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
