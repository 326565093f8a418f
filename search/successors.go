package search

import (
	"github.com/bertbaron/sokovsolve/level"
	"github.com/bertbaron/sokovsolve/pathfind"
)

// Successors enumerates the legal successor states of s per §4.6: for
// every box and every push direction, walk the player to the push
// position (if reachable), push the box, chain any tunnel pushes, and
// discard the result if it is a non-target freeze deadlock.
func Successors(s *State, ctx *Context) []*State {
	var result []*State
	reachable := s.playerReachableArea(ctx)

	// Iterate boxes in a fixed row-major order so that successor
	// enumeration, and therefore the heap's insertion-order tie-break,
	// is deterministic across repeated solves of the same input.
	for _, box := range s.Boxes.Sorted() {
		for _, dir := range level.Directions {
			successor := trySuccessor(s, box, dir, reachable, ctx)
			if successor != nil {
				result = append(result, successor)
			}
		}
	}
	return result
}

func trySuccessor(s *State, box level.Position, dir level.Direction, reachable map[level.Position]struct{}, ctx *Context) *State {
	vector := dir.Vector()
	newBox := box.Add(vector)
	if ctx.canBlockCrate(newBox, s.Boxes) {
		return nil
	}

	stand := box.Sub(vector)
	if ctx.canBlockPlayer(stand, s.Boxes) {
		return nil
	}
	if _, ok := reachable[stand]; !ok {
		return nil
	}

	path, ok := pathfind.FindPath(s.Player, stand, func(p level.Position) bool {
		return ctx.canBlockPlayer(p, s.Boxes)
	})
	if !ok {
		// The player's reachable area already proved stand is
		// reachable; a pathfinder failure here is a logic error.
		panic("search: pathfinder found no path to a proven-reachable cell")
	}

	actions := make([]Action, 0, len(path))
	for i := 1; i < len(path); i++ {
		step := path[i].Sub(path[i-1])
		actions = append(actions, Action{Kind: Move, Dir: unitVectorToDirection(step)})
	}
	actions = append(actions, Action{Kind: Push, Dir: dir})

	newMovements := s.Movements.appended(actions...)

	// Chain tunnel pushes: while the box is entering a tunnel mouth
	// from the correct direction and the next cell ahead is not
	// box-blocked, keep pushing without enqueuing the intermediate
	// states.
	for ctx.Tunnels.Contains(newBox.Sub(vector), dir) {
		ahead := newBox.Add(vector)
		if ctx.canBlockCrate(ahead, s.Boxes) {
			break
		}
		newBox = ahead
		newMovements = newMovements.appended(Action{Kind: Push, Dir: dir})
	}

	newBoxes := s.Boxes.Moved(box, newBox)

	if !ctx.Level.TileAt(newBox).Has(level.Target) && IsFreezeDeadlock(newBox, newBoxes, ctx) {
		return nil
	}

	newPlayer := newBox.Sub(vector)
	return NewState(newPlayer, newBoxes, newMovements, ctx)
}

func unitVectorToDirection(v level.Position) level.Direction {
	for _, d := range level.Directions {
		if d.Vector() == v {
			return d
		}
	}
	panic("search: non-unit-cardinal step in a walking path")
}
