package motion

// RevealSet tracks one-shot entrance animations. An element reveals the first
// time it is observed intersecting the viewport and never again. A RevealSet
// belongs to a single page view and is not safe for concurrent use.
type RevealSet struct {
	revealed map[string]bool
}

// NewRevealSet returns a set with the given ids already revealed.
func NewRevealSet(ids ...string) *RevealSet {
	s := &RevealSet{revealed: make(map[string]bool, len(ids))}
	for _, id := range ids {
		s.revealed[id] = true
	}
	return s
}

// Observe records an intersection signal for id and reports whether the
// entrance animation starts now. It returns true at most once per id.
func (s *RevealSet) Observe(id string, intersecting bool) bool {
	if !intersecting || s.revealed[id] {
		return false
	}
	s.revealed[id] = true
	return true
}

// Revealed reports whether id has played its entrance animation.
func (s *RevealSet) Revealed(id string) bool {
	return s.revealed[id]
}
