package search

// visitedSet stores normalized states, keyed by their Hash with an
// equality-checked bucket per key to handle the rare hash collision,
// the same way a Rust HashSet<State> would resolve one.
type visitedSet struct {
	buckets map[uint64][]*State
}

func newVisitedSet() *visitedSet {
	return &visitedSet{buckets: make(map[uint64][]*State)}
}

func (v *visitedSet) add(s *State) {
	h := s.Hash()
	for _, existing := range v.buckets[h] {
		if existing.Equal(s) {
			return
		}
	}
	v.buckets[h] = append(v.buckets[h], s)
}

func (v *visitedSet) contains(s *State) bool {
	for _, existing := range v.buckets[s.Hash()] {
		if existing.Equal(s) {
			return true
		}
	}
	return false
}
