package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bertbaron/sokovsolve/level"
)

// loadLevel reads a text level in the common Sokoban notation, the
// same legend the sokoban example under bertbaron-pathfinding/examples
// uses for its chars map: '#' wall, ' ' floor, '.' target, '@' player,
// '$' box, '+' player on target, '*' box on target. Text parsing is
// deliberately kept here rather than in the level package: level is
// the core data model, not a file format.
func loadLevel(path string) (*level.Level, []level.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sokovsolve: empty level file %s", path)
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	b := level.NewBuilder(width, len(rows))
	var boxes []level.Position
	sawPlayer := false
	for y, row := range rows {
		for x, ch := range row {
			p := level.Position{X: x, Y: y}
			switch ch {
			case '#':
				b.Set(p, level.Wall)
			case ' ':
				b.Set(p, level.Floor)
			case '.':
				b.Set(p, level.Floor|level.Target)
				b.AddTarget(p)
			case '@':
				b.Set(p, level.Floor)
				b.SetPlayer(p)
				sawPlayer = true
			case '+':
				b.Set(p, level.Floor|level.Target)
				b.AddTarget(p)
				b.SetPlayer(p)
				sawPlayer = true
			case '$':
				b.Set(p, level.Floor)
				boxes = append(boxes, p)
			case '*':
				b.Set(p, level.Floor|level.Target)
				b.AddTarget(p)
				boxes = append(boxes, p)
			default:
				return nil, nil, fmt.Errorf("sokovsolve: unknown rune %q at line %d col %d", ch, y+1, x+1)
			}
		}
	}
	if !sawPlayer {
		return nil, nil, fmt.Errorf("sokovsolve: level %s has no player start", path)
	}

	return b.Build(), boxes, nil
}
