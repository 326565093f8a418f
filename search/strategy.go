package search

// Strategy selects the cost-ordering discipline the search uses to
// pick which state to expand next.
type Strategy int

const (
	// Fast finds any solution, prioritizing a small lower bound over
	// move count.
	Fast Strategy = iota

	// Mixed balances lower bound and move count evenly.
	Mixed

	// OptimalMovePush orders by move count first, then push count,
	// then lower bound, intending move-optimal solutions.
	OptimalMovePush

	// OptimalPushMove orders by push count first, then move count,
	// then lower bound, intending push-optimal solutions.
	OptimalPushMove
)

func (s Strategy) String() string {
	switch s {
	case Fast:
		return "Fast"
	case Mixed:
		return "Mixed"
	case OptimalMovePush:
		return "OptimalMovePush"
	case OptimalPushMove:
		return "OptimalPushMove"
	}
	return "<unknown strategy>"
}

// heuristic computes the priority value per §4.5's table. Smaller
// values are higher priority. The constants assume moves, pushes and
// lowerBound are each below 10,000; callers must have already
// validated that invariant.
func (s Strategy) heuristic(moves, pushes, lowerBound int) int {
	switch s {
	case Fast:
		return lowerBound*10_000 + moves
	case Mixed:
		return lowerBound + moves
	case OptimalMovePush:
		return moves*100_000_000 + pushes*10_000 + lowerBound
	case OptimalPushMove:
		return pushes*100_000_000 + moves*10_000 + lowerBound
	}
	panic("search: invalid strategy")
}
