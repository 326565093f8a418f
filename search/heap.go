package search

import (
	"container/heap"
	"sort"
)

// heapEntry is one entry in the search frontier. seq breaks ties in
// insertion order, giving the heap a stable, reproducible extraction
// order as required by §5.
type heapEntry struct {
	state *State
	seq   int
}

// priorityQueue is a min-heap by (heuristic, insertion order),
// matching the teacher's container/heap-based priorityQueue in
// strategies.go, generalized from float64 costs to the integer
// heuristic this package computes.
type priorityQueue []*heapEntry

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	hi, hj := pq[i].state.Heuristic(), pq[j].state.Heuristic()
	if hi != hj {
		return hi < hj
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*heapEntry))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// stateHeap wraps the priorityQueue with the insertion counter and the
// bookkeeping the search driver reports in its Result.
type stateHeap struct {
	pq            priorityQueue
	seq           int
	visitedCount  int
	expandedCount int
}

func newStateHeap() *stateHeap {
	h := &stateHeap{pq: make(priorityQueue, 0, 64)}
	heap.Init(&h.pq)
	return h
}

func (h *stateHeap) Len() int {
	return h.pq.Len()
}

func (h *stateHeap) push(s *State) {
	h.seq++
	heap.Push(&h.pq, &heapEntry{state: s, seq: h.seq})
}

func (h *stateHeap) pop() *State {
	return heap.Pop(&h.pq).(*heapEntry).state
}

// shedLowerQuantile implements the disabled heap-pressure heuristic
// described in §9: keep only the entries whose heuristic and move
// count both fall at or below the alpha quantile. This is an
// inadmissible pruning, opt-in only, and never enabled for the
// Optimal* strategies (enforced by Solver.WithHeapPressureLimit).
func (h *stateHeap) shedLowerQuantile(alpha float64) {
	n := len(h.pq)
	if n == 0 {
		return
	}
	heuristics := make([]int, n)
	moves := make([]int, n)
	for i, e := range h.pq {
		heuristics[i] = e.state.Heuristic()
		moves[i] = e.state.Movements.Moves()
	}
	sort.Ints(heuristics)
	sort.Ints(moves)

	idx := int(float64(n) * alpha)
	if idx >= n {
		idx = n - 1
	}
	heuristicCap := heuristics[idx]
	moveCap := moves[idx]

	kept := h.pq[:0]
	for _, e := range h.pq {
		if e.state.Heuristic() <= heuristicCap && e.state.Movements.Moves() <= moveCap {
			kept = append(kept, e)
		}
	}
	h.pq = kept
	heap.Init(&h.pq)
}
