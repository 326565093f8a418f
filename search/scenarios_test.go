package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bertbaron/sokovsolve/level"
)

func solveLevel(t *testing.T, rows []string, strategy Strategy) (Result, *Context) {
	t.Helper()
	lvl, boxes := buildTestLevel(rows)
	solver := NewSolver(lvl, boxes, strategy)
	result, err := solver.Solve(context.Background())
	require.NoError(t, err)
	return result, solver.ctx
}

// Scenario A: trivial push, no walking needed.
func TestScenarioATrivialPush(t *testing.T) {
	rows := []string{
		"#####",
		"#@$.#",
		"#####",
	}
	result, _ := solveLevel(t, rows, Fast)
	require.Equal(t, Solved, result.Status)
	actions := result.Movements.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, Action{Kind: Push, Dir: level.Right}, actions[0])
}

// Scenario B: walk then push.
func TestScenarioBWalkThenPush(t *testing.T) {
	rows := []string{
		"#####",
		"#@  #",
		"# $.#",
		"#####",
	}
	// the only target is at (3,2), via the '.' rune there.
	result, _ := solveLevel(t, rows, Fast)
	require.Equal(t, Solved, result.Status)
	actions := result.Movements.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, Action{Kind: Move, Dir: level.Down}, actions[0])
	assert.Equal(t, Action{Kind: Push, Dir: level.Right}, actions[1])
}

// Scenario C: tunnel chain collapses three pushes into one successor
// with no intermediate states enqueued. The level is a single-row
// corridor, so every interior floor cell is flanked by walls above
// and below and qualifies as a horizontal tunnel cell.
func TestScenarioCTunnelChain(t *testing.T) {
	target := level.Position{5, 1}
	b := level.NewBuilder(7, 3)
	for x := 0; x < 7; x++ {
		b.Set(level.Position{x, 0}, level.Wall)
		b.Set(level.Position{x, 2}, level.Wall)
	}
	b.Set(level.Position{0, 1}, level.Wall)
	b.Set(level.Position{6, 1}, level.Wall)
	for x := 1; x <= 5; x++ {
		b.Set(level.Position{x, 1}, level.Floor)
	}
	b.Set(target, level.Floor|level.Target)
	b.AddTarget(target)
	b.SetPlayer(level.Position{1, 1})
	lvl := b.Build()
	boxes := []level.Position{{2, 1}}

	solver := NewSolver(lvl, boxes, Fast)
	result, err := solver.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, Solved, result.Status)

	actions := result.Movements.Actions()
	require.Len(t, actions, 3, "expected exactly 3 chained pushes and no walking")
	for _, a := range actions {
		assert.Equal(t, Push, a.Kind)
		assert.Equal(t, level.Right, a.Dir)
	}
}

// Scenario D: freeze deadlock prune. A target elsewhere in the pocket
// keeps the lower-bound table populated for every floor cell, so the
// top-left corner is only unreachable-as-a-push-destination because it
// is a genuine freeze deadlock, not because it is absent from the
// table as a dead cell.
func TestScenarioDFreezeDeadlockPrune(t *testing.T) {
	rows := []string{
		"#####",
		"#@$ #",
		"#  .#",
		"#####",
	}
	lvl, boxes := buildTestLevel(rows)
	ctx := NewContext(lvl, Fast)
	require.Contains(t, ctx.LowerBounds, level.Position{1, 1},
		"the corner cell must have a lower-bound entry, so its exclusion below is due to freeze, not dead-cell pruning")

	initial := NewState(lvl.PlayerStart, NewBoxSet(boxes), Movements{}, ctx)

	for _, s := range Successors(initial, ctx) {
		if s.Boxes.Contains(level.Position{1, 1}) {
			t.Fatalf("successor generator must never push a box into the dead corner (1,1)")
		}
	}

	// Direct predicate check on the same corner case.
	cornerBoxes := NewBoxSet([]level.Position{{1, 1}})
	assert.True(t, IsFreezeDeadlock(level.Position{1, 1}, cornerBoxes, ctx),
		"a box in a corner with walls on both axes must be a freeze deadlock")
}

// Scenario E: no solution, boxes walled in, search terminates after a
// single pop.
func TestScenarioENoSolution(t *testing.T) {
	rows := []string{
		"#####",
		"#@#.#",
		"#$# #",
		"#####",
	}
	result, _ := solveLevel(t, rows, Fast)
	assert.Equal(t, NoSolution, result.Status)
	assert.Equal(t, 1, result.Visited)
}

// Scenario F: a cancelled context is honored as a Timeout rather than
// exhausting the search.
func TestScenarioFTimeout(t *testing.T) {
	rows := []string{
		"##########",
		"#@       #",
		"# $ $ $ $#",
		"#        #",
		"# $ $ $ $#",
		"#.  .  . #",
		"##########",
	}
	lvl, boxes := buildTestLevel(rows)
	solver := NewSolver(lvl, boxes, Fast)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := solver.Solve(ctx)
	require.NoError(t, err)
	assert.Equal(t, Timeout, result.Status)
}
