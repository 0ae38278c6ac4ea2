// Package disjoint implements a union-find (disjoint-set) structure over a
// fixed range of integer elements. It is used by the ball cover to merge
// radius neighborhoods into connected components, and is small enough to be
// reused anywhere a transitive grouping over point indices is needed.
package disjoint
