package search

import (
	"hash/fnv"

	"github.com/bertbaron/sokovsolve/level"
	"github.com/bertbaron/sokovsolve/pathfind"
)

// State is an immutable search node: a player position, a box set,
// the action sequence that produced it from the initial state, and a
// precomputed heuristic. Equality and hashing ignore Movements and the
// heuristic, per §3.
type State struct {
	Player    level.Position
	Boxes     BoxSet
	Movements Movements

	heuristic      int
	lowerBound     int
	lowerBoundDone bool
}

// NewState constructs a State and eagerly computes its lower bound and
// heuristic, per §4.5. Panics (an internal invariant violation, not a
// recoverable error) if move or push counts reach the 10,000 ceiling.
func NewState(player level.Position, boxes BoxSet, movements Movements, ctx *Context) *State {
	if movements.Moves() >= maxActionCount || movements.Pushes() >= maxActionCount {
		panic("search: move or push count exceeds the 10,000 ceiling")
	}
	s := &State{Player: player, Boxes: boxes, Movements: movements}
	lb := s.LowerBound(ctx)
	if lb >= maxActionCount {
		panic("search: lower bound exceeds the 10,000 ceiling")
	}
	s.heuristic = ctx.Strategy.heuristic(movements.Moves(), movements.Pushes(), lb)
	return s
}

// Heuristic returns the precomputed priority value; lower is higher
// priority.
func (s *State) Heuristic() int {
	return s.heuristic
}

// LowerBound returns the admissible estimate of remaining pushes,
// computing and memoizing it on first use. Memoization is an
// optimization, not a contract: the value is deterministic given the
// state.
func (s *State) LowerBound(ctx *Context) int {
	if !s.lowerBoundDone {
		s.lowerBound = s.calculateLowerBound(ctx)
		s.lowerBoundDone = true
	}
	return s.lowerBound
}

func (s *State) calculateLowerBound(ctx *Context) int {
	sum := 0
	for box := range s.Boxes {
		lb, ok := ctx.LowerBounds[box]
		if !ok {
			return deadLowerBound
		}
		sum += lb
	}
	return sum
}

// IsSolved reports whether every box already occupies a target, i.e.
// the remaining lower bound is zero.
func (s *State) IsSolved(ctx *Context) bool {
	return s.LowerBound(ctx) == 0
}

// Equal reports whether s and other have the same player position and
// box set, ignoring Movements and the heuristic.
func (s *State) Equal(other *State) bool {
	return s.Player == other.Player && s.Boxes.Equal(other.Boxes)
}

// Hash combines the player position with every box position into a
// single order-independent digest, matching the equality relation:
// two states that are Equal always hash equal.
func (s *State) Hash() uint64 {
	h := fnv.New64a()
	writePosition(h, s.Player)
	var boxesHash uint64
	for box := range s.Boxes {
		bh := fnv.New64a()
		writePosition(bh, box)
		boxesHash += bh.Sum64()
	}
	base := h.Sum64()
	return base ^ boxesHash
}

func writePosition(h interface{ Write([]byte) (int, error) }, p level.Position) {
	var buf [16]byte
	putInt64(buf[0:8], int64(p.X))
	putInt64(buf[8:16], int64(p.Y))
	h.Write(buf[:])
}

func putInt64(buf []byte, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
}

// playerReachableArea returns the set of cells the player can walk to
// without pushing any box, from the current player position.
func (s *State) playerReachableArea(ctx *Context) map[level.Position]struct{} {
	return pathfind.ReachableArea(s.Player, func(p level.Position) bool {
		return !ctx.canBlockPlayer(p, s.Boxes)
	})
}

// Normalized returns a clone of s with Player replaced by the
// canonical representative of the player's reachable area: two states
// that differ only in where the player stands within one connected
// free region normalize to the same State.
func (s *State) Normalized(ctx *Context) *State {
	area := s.playerReachableArea(ctx)
	rep, ok := pathfind.NormalizedRepresentative(area)
	if !ok {
		// the player's own cell is always in its reachable area.
		panic("search: empty reachable area for a live state")
	}
	cp := *s
	cp.Player = rep
	return &cp
}
