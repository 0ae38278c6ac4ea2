// Package ball implements the epsilon-ball cover: every point is joined with
// its radius neighborhood, and the connected components of the resulting
// "within epsilon" relation become the level sets. The components partition
// the points, so unlike the interval grids the level sets are disjoint and
// carry no axis-aligned bounds.
package ball
