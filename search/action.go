package search

import "github.com/bertbaron/sokovsolve/level"

// ActionKind distinguishes a plain walk step from a box push.
type ActionKind int

const (
	Move ActionKind = iota
	Push
)

func (k ActionKind) String() string {
	if k == Push {
		return "Push"
	}
	return "Move"
}

// Action is a single player move or box push in a given direction.
type Action struct {
	Kind ActionKind
	Dir  level.Direction
}

func (a Action) String() string {
	return a.Kind.String() + "(" + a.Dir.String() + ")"
}

// maxActionCount bounds both moves() and pushes() per §3; exceeding it
// anywhere is an internal invariant violation, not a pruning decision.
const maxActionCount = 10_000
