package search

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/bertbaron/sokovsolve/level"
)

// Status reports why a solve ended.
type Status int

const (
	// Solved means Result.Movements holds a solution.
	Solved Status = iota
	// NoSolution means the search exhausted every reachable state.
	NoSolution
	// Timeout means the caller's context deadline elapsed before a
	// solution was found.
	Timeout
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "Solved"
	case NoSolution:
		return "NoSolution"
	case Timeout:
		return "Timeout"
	}
	return "<unknown status>"
}

// Result is what a solve produces: either a solved movement sequence,
// or a failure status, plus bookkeeping counters useful for tuning and
// tests.
type Result struct {
	Status    Status
	Movements Movements
	Visited   int
	Expanded  int
}

// Progress is handed to an optional callback after every pop, letting
// a caller print status the way the teacher's example programs print
// search progress, without the core depending on any particular output
// surface.
type Progress struct {
	Visited   int
	HeapSize  int
	Heuristic int
	Moves     int
	Pushes    int
}

// ErrInvariant marks an internal invariant violation: a programming
// defect in the solver rather than a normal search outcome. Solve
// wraps it with errors.Wrap and the recovered panic message; callers
// should treat a non-nil error from Solve as a bug report, never as a
// retryable condition.
var ErrInvariant = errors.New("search: internal invariant violated")

// Solver performs the best-first search described in §4.8. It owns
// its heap and visited set; the shared read-only Context (level, lower
// bounds, tunnels) is built once per Solver.
type Solver struct {
	ctx              *Context
	initialBoxes     BoxSet
	progress         func(Progress)
	heapPressureCap  int
	allowHeapShedder bool
}

// NewSolver builds a Solver for lvl under strategy, given the initial
// box configuration. The shared lower-bound table and tunnel set are
// computed immediately; box positions are not part of Level itself
// (only walls, floor, targets and the player start are), since the
// same level can be solved from more than one initial box layout.
func NewSolver(lvl *level.Level, initialBoxes []level.Position, strategy Strategy) *Solver {
	return &Solver{
		ctx:          NewContext(lvl, strategy),
		initialBoxes: NewBoxSet(initialBoxes),
	}
}

// WithProgress installs a progress callback, invoked once per popped
// state. Purely observational; never required for correctness.
func (s *Solver) WithProgress(fn func(Progress)) *Solver {
	s.progress = fn
	return s
}

// WithHeapPressureLimit opts into the inadmissible heap-shedding
// heuristic described in §9: once the heap exceeds cap entries, only
// the states at or below the 80th percentile of both heuristic and
// move count are kept, and the rest are discarded. Refused
// (silently left disabled) under OptimalMovePush and OptimalPushMove,
// since shedding states there would break the strategies' intended
// cost-optimality.
func (s *Solver) WithHeapPressureLimit(cap int) *Solver {
	if s.ctx.Strategy == OptimalMovePush || s.ctx.Strategy == OptimalPushMove {
		return s
	}
	s.heapPressureCap = cap
	s.allowHeapShedder = true
	return s
}

// Solve runs the best-first loop of §4.8 until a solution is found,
// the heap is exhausted, or ctx is done. Cancellation is cooperative:
// the deadline is checked at the top of each pop, matching the timeout
// check the spec places "at the loop head".
//
// Solve returns the first solved successor it generates. Under
// OptimalMovePush and OptimalPushMove that solution is therefore not
// guaranteed to be move- or push-optimal.
//
// Internal invariant violations (§7) — a proven-reachable cell with no
// walking path, an action or lower-bound count past the 10,000
// ceiling — panic deep in the call stack rather than threading a
// distinct error type through every helper. Solve is the single error
// surface (§7): it recovers here and reports the violation as an
// ErrInvariant-wrapped error instead of crashing the caller's process.
func (s *Solver) Solve(ctx context.Context) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(ErrInvariant, fmt.Sprint(r))
		}
	}()

	initial := NewState(s.ctx.Level.PlayerStart, s.initialBoxes, Movements{}, s.ctx)

	h := newStateHeap()
	h.push(initial)

	visited := newVisitedSet()

	for h.Len() > 0 {
		select {
		case <-ctx.Done():
			return Result{Status: Timeout, Visited: h.visitedCount, Expanded: h.expandedCount}, nil
		default:
		}

		current := h.pop()
		h.visitedCount++
		visited.add(current.Normalized(s.ctx))

		if s.progress != nil {
			s.progress(Progress{
				Visited:   h.visitedCount,
				HeapSize:  h.Len(),
				Heuristic: current.Heuristic(),
				Moves:     current.Movements.Moves(),
				Pushes:    current.Movements.Pushes(),
			})
		}

		for _, successor := range Successors(current, s.ctx) {
			if visited.contains(successor.Normalized(s.ctx)) {
				continue
			}
			if successor.IsSolved(s.ctx) {
				return Result{
					Status:    Solved,
					Movements: successor.Movements,
					Visited:   h.visitedCount,
					Expanded:  h.expandedCount + 1,
				}, nil
			}
			h.push(successor)
			h.expandedCount++
		}

		if s.allowHeapShedder && h.Len() > s.heapPressureCap {
			h.shedLowerQuantile(0.8)
		}
	}

	return Result{Status: NoSolution, Visited: h.visitedCount, Expanded: h.expandedCount}, nil
}
