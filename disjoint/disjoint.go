package disjoint

import "fmt"

// Set is a union-find over the elements 0..n-1 with union by rank and path
// compression, giving near-constant amortized cost per operation.
type Set struct {
	parent []int
	rank   []int
}

// New returns a Set over n elements, each initially its own component.
func New(n int) (*Set, error) {
	if n < 0 {
		return nil, fmt.Errorf("disjoint: negative element count %d", n)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &Set{parent: parent, rank: make([]int, n)}, nil
}

// Len returns the number of elements the set was created over.
func (s *Set) Len() int { return len(s.parent) }

// Find returns the representative of the component containing x.
func (s *Set) Find(x int) int {
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[x] != root {
		s.parent[x], x = root, s.parent[x]
	}
	return root
}

// Union merges the components containing a and b.
func (s *Set) Union(a, b int) {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return
	}
	if s.rank[ra] < s.rank[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	if s.rank[ra] == s.rank[rb] {
		s.rank[ra]++
	}
}

// UnionAll unions every element of elems with the first one, folding the
// whole list into a single component. The final components do not depend on
// the order of the list.
func (s *Set) UnionAll(elems []int) error {
	if len(elems) == 0 {
		return fmt.Errorf("disjoint: UnionAll on empty list")
	}
	first := elems[0]
	for _, e := range elems[1:] {
		s.Union(first, e)
	}
	return nil
}

// Connected reports whether a and b are in the same component.
func (s *Set) Connected(a, b int) bool { return s.Find(a) == s.Find(b) }

// ConnectedComponents returns a label per element such that two elements
// share a label iff they are connected. Labels are ordinals assigned in
// first-seen element order, so they are stable for a given union history.
func (s *Set) ConnectedComponents() []int {
	labels := make([]int, len(s.parent))
	seen := make(map[int]int, len(s.parent))
	for i := range s.parent {
		root := s.Find(i)
		label, ok := seen[root]
		if !ok {
			label = len(seen)
			seen[root] = label
		}
		labels[i] = label
	}
	return labels
}
