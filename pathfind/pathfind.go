// Package pathfind implements A* over 4-connected grid cells and the
// flood-fill reachability query the search package builds on.
package pathfind

import (
	"container/heap"

	"github.com/bertbaron/sokovsolve/level"
)

func manhattan(a, b level.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// openNode is one entry in the A* open set. seq breaks ties in
// insertion order so that repeated runs on the same input are
// reproducible, per the spec's stable tie-break requirement.
type openNode struct {
	pos     level.Position
	f       int
	seq     int
	heapIdx int
}

type openSet []*openNode

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIdx = i
	pq[j].heapIdx = j
}

func (pq *openSet) Push(x interface{}) {
	n := x.(*openNode)
	n.heapIdx = len(*pq)
	*pq = append(*pq, n)
}

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// FindPath runs A* with a Manhattan heuristic and uniform step cost 1
// from "from" to "to", treating any cell for which blocked returns
// true as impassable. The returned sequence begins at "from" and ends
// at "to", with adjacent entries differing by exactly one cardinal
// unit vector. Returns ok == false if no path exists.
func FindPath(from, to level.Position, blocked func(level.Position) bool) (path []level.Position, ok bool) {
	if blocked(from) || blocked(to) {
		return nil, false
	}
	if from == to {
		return []level.Position{from}, true
	}

	cameFrom := map[level.Position]level.Position{}
	gScore := map[level.Position]int{from: 0}

	open := make(openSet, 0, 64)
	heap.Init(&open)
	seq := 0
	heap.Push(&open, &openNode{pos: from, f: manhattan(from, to), seq: seq})

	for open.Len() > 0 {
		current := heap.Pop(&open).(*openNode)
		if current.pos == to {
			return reconstruct(cameFrom, from, to), true
		}
		for _, d := range level.Directions {
			next := current.pos.Add(d.Vector())
			if blocked(next) {
				continue
			}
			tentative := gScore[current.pos] + 1
			if g, seen := gScore[next]; seen && tentative >= g {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = current.pos
			seq++
			heap.Push(&open, &openNode{pos: next, f: tentative + manhattan(next, to), seq: seq})
		}
	}
	return nil, false
}

func reconstruct(cameFrom map[level.Position]level.Position, from, to level.Position) []level.Position {
	path := []level.Position{to}
	current := to
	for current != from {
		current = cameFrom[current]
		path = append(path, current)
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ReachableArea returns the connected component containing start,
// under the 4-connected passable predicate, via a standard flood
// fill.
func ReachableArea(start level.Position, passable func(level.Position) bool) map[level.Position]struct{} {
	area := map[level.Position]struct{}{start: {}}
	queue := []level.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range level.Directions {
			next := p.Add(d.Vector())
			if _, seen := area[next]; seen {
				continue
			}
			if !passable(next) {
				continue
			}
			area[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return area
}

// NormalizedRepresentative returns the canonical member of area: the
// cell with the smallest y, tie-broken by smallest x. Returns ok ==
// false for an empty area.
func NormalizedRepresentative(area map[level.Position]struct{}) (level.Position, bool) {
	first := true
	var best level.Position
	for p := range area {
		if first || p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
			first = false
		}
	}
	return best, !first
}
