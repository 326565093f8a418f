package search

import "github.com/bertbaron/sokovsolve/level"

// BoxSet is an unordered, unique collection of box positions.
type BoxSet map[level.Position]struct{}

// NewBoxSet builds a BoxSet from a position slice, deduplicating.
func NewBoxSet(positions []level.Position) BoxSet {
	set := make(BoxSet, len(positions))
	for _, p := range positions {
		set[p] = struct{}{}
	}
	return set
}

// Contains reports whether p is a box position.
func (b BoxSet) Contains(p level.Position) bool {
	_, ok := b[p]
	return ok
}

// Clone returns an independent copy of b.
func (b BoxSet) Clone() BoxSet {
	cp := make(BoxSet, len(b))
	for p := range b {
		cp[p] = struct{}{}
	}
	return cp
}

// Moved returns a clone of b with "from" removed and "to" inserted.
// Used when building a successor state's box set.
func (b BoxSet) Moved(from, to level.Position) BoxSet {
	cp := b.Clone()
	delete(cp, from)
	cp[to] = struct{}{}
	return cp
}

// Equal reports whether b and other contain exactly the same
// positions.
func (b BoxSet) Equal(other BoxSet) bool {
	if len(b) != len(other) {
		return false
	}
	for p := range b {
		if _, ok := other[p]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the box positions in a deterministic row-major order
// (smallest Y, then smallest X). Successors iterates boxes through it
// so that successor enumeration does not depend on map order.
func (b BoxSet) Sorted() []level.Position {
	out := make([]level.Position, 0, len(b))
	for p := range b {
		out = append(out, p)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b level.Position) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
