// Package cli parses the flags and sets up the logger for cmd/sokovsolve,
// the same way the teacher's example mains and pietv-astar's cmd/maze
// main keep their flag handling in a few lines ahead of main().
package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bertbaron/sokovsolve/search"
)

// Options holds the parsed command-line configuration for a solve run.
type Options struct {
	LevelPath       string
	Strategy        search.Strategy
	Timeout         time.Duration
	HeapPressureCap int
	Profile         string
	Verbose         bool
}

// ParseFlags parses args (excluding the program name) into Options.
// Errors are returned rather than calling os.Exit, so callers in
// main() decide how to report them.
func ParseFlags(args []string) (Options, error) {
	fs := flag.NewFlagSet("sokovsolve", flag.ContinueOnError)

	level := fs.String("level", "", "path to a text level file (required)")
	strategy := fs.String("strategy", "fast", "search strategy: fast, mixed, optimal-move-push, optimal-push-move")
	timeout := fs.Duration("timeout", 30*time.Second, "search timeout")
	heapCap := fs.Int("heap-pressure-cap", 0, "opt into heap-pressure shedding above this many open states (0 disables it)")
	profile := fs.String("cpuprofile", "", "write a CPU profile to this path")
	verbose := fs.Bool("v", false, "log one line per popped state")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if *level == "" {
		return Options{}, fmt.Errorf("cli: -level is required")
	}

	strat, err := parseStrategy(*strategy)
	if err != nil {
		return Options{}, err
	}

	return Options{
		LevelPath:       *level,
		Strategy:        strat,
		Timeout:         *timeout,
		HeapPressureCap: *heapCap,
		Profile:         *profile,
		Verbose:         *verbose,
	}, nil
}

func parseStrategy(name string) (search.Strategy, error) {
	switch name {
	case "fast":
		return search.Fast, nil
	case "mixed":
		return search.Mixed, nil
	case "optimal-move-push":
		return search.OptimalMovePush, nil
	case "optimal-push-move":
		return search.OptimalPushMove, nil
	default:
		return 0, fmt.Errorf("cli: unknown strategy %q", name)
	}
}

// NewLogger returns a plain stdlib logger, with a timestamp prefix
// only when verbose is set, matching the teacher's unadorned fmt.Printf/log.Fatal style rather
// than a structured logging package the pack never imports.
func NewLogger(verbose bool) *log.Logger {
	flags := log.LstdFlags
	if !verbose {
		flags = 0
	}
	return log.New(os.Stderr, "sokovsolve: ", flags)
}
