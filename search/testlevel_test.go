package search

import "github.com/bertbaron/sokovsolve/level"

// buildTestLevel is a small ASCII level builder for tests, private to this
// package: level parsing from text is explicitly out of scope for the
// production code (§1), but tests need a compact way to describe a
// grid. Legend: '#' wall, ' ' floor, '.' target, '@' player start,
// '$' box, '+' player on target, '*' box on target.
func buildTestLevel(rows []string) (*level.Level, []level.Position) {
	height := len(rows)
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	b := level.NewBuilder(width, height)
	var boxes []level.Position
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
			case '+':
				b.Set(p, level.Floor|level.Target)
				b.AddTarget(p)
				b.SetPlayer(p)
			case '$':
				b.Set(p, level.Floor)
				boxes = append(boxes, p)
			case '*':
				b.Set(p, level.Floor|level.Target)
				b.AddTarget(p)
				boxes = append(boxes, p)
			default:
				panic("buildTestLevel: unknown rune " + string(ch))
			}
		}
	}
	return b.Build(), boxes
}
