package dependency

// indexSet is an insertion-ordered set of node indices. Iteration order is
// the order in which indices were first added.
type indexSet struct {
	order   []int
	members map[int]struct{}
}

func (s *indexSet) add(i int) bool {
	if s.members == nil {
		s.members = make(map[int]struct{})
	}
	if _, ok := s.members[i]; ok {
		return false
	}
	s.members[i] = struct{}{}
	s.order = append(s.order, i)
	return true
}

func (s *indexSet) contains(i int) bool {
	_, ok := s.members[i]
	return ok
}

func (s *indexSet) len() int {
	return len(s.order)
}

// node wraps one element of the graph.
//
// If node X lists Y in dependsOn, then Y lists X in dependedUpon. Both sets
// hold indices into Graph.nodes.
type node[T comparable] struct {
	element      T
	dependsOn    indexSet
	dependedUpon indexSet
}
