package search

import "github.com/bertbaron/sokovsolve/level"

// IsFreezeDeadlock implements §4.7: a box at pos is frozen along an
// axis if either side of that axis is a wall, or a box that is itself
// frozen (recursive). The box is a deadlock only if it is frozen
// along both axes. Revisiting a position during the recursion counts
// as frozen on that branch, breaking cycles of mutually-supporting
// boxes.
//
// Callers must only invoke this for boxes not already on a target: a
// frozen set of boxes that are all on targets is a solution, not a
// deadlock.
func IsFreezeDeadlock(pos level.Position, boxes BoxSet, ctx *Context) bool {
	return isFrozen(pos, boxes, ctx, map[level.Position]bool{})
}

func isFrozen(pos level.Position, boxes BoxSet, ctx *Context, visited map[level.Position]bool) bool {
	if visited[pos] {
		return true
	}
	visited[pos] = true

	for _, axis := range level.Axes {
		if !frozenOnAxis(pos, axis, boxes, ctx, visited) {
			return false
		}
	}
	return true
}

func frozenOnAxis(pos level.Position, axis [2]level.Direction, boxes BoxSet, ctx *Context, visited map[level.Position]bool) bool {
	for _, dir := range axis {
		neighbor := pos.Add(dir.Vector())
		if ctx.Level.TileAt(neighbor).Has(level.Wall) {
			return true
		}
		if boxes.Contains(neighbor) && isFrozen(neighbor, boxes, ctx, visited) {
			return true
		}
	}
	return false
}
