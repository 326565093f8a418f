// Command sokovsolve is a thin demonstration CLI around the search
// package, kept separate from the core library the same way the
// teacher keeps main.go and examples/sokoban/main.go next to solve.go:
// a consumer of the library, not part of its contract.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/bertbaron/sokovsolve/internal/cli"
	"github.com/bertbaron/sokovsolve/search"
)

func main() {
	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := cli.NewLogger(opts.Verbose)

	if opts.Profile != "" {
		f, err := os.Create(opts.Profile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	lvl, boxes, err := loadLevel(opts.LevelPath)
	if err != nil {
		log.Fatal(err)
	}

	solver := search.NewSolver(lvl, boxes, opts.Strategy)
	if opts.HeapPressureCap > 0 {
		solver = solver.WithHeapPressureLimit(opts.HeapPressureCap)
	}
	if opts.Verbose {
		solver = solver.WithProgress(func(p search.Progress) {
			logger.Printf("visited %d, heap %d, heuristic %d, moves %d, pushes %d",
				p.Visited, p.HeapSize, p.Heuristic, p.Moves, p.Pushes)
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	result, err := solver.Solve(ctx)
	if err != nil {
		log.Fatal(err)
	}

	switch result.Status {
	case search.Solved:
		actions := result.Movements.Actions()
		fmt.Printf("Solved in %d moves, %d pushes\n", result.Movements.Moves(), result.Movements.Pushes())
		for _, a := range actions {
			fmt.Println(a.String())
		}
	case search.NoSolution:
		fmt.Println("No solution found")
	case search.Timeout:
		fmt.Println("Timed out before finding a solution")
	}
	fmt.Printf("visited %d nodes, expanded %d\n", result.Visited, result.Expanded)
}
