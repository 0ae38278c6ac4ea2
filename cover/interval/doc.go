// Package interval implements the grid covers: Fixed divides each filter
// dimension into equal-width intervals widened by a percent overlap, while
// Restrained takes the interval length and step size directly. Both produce
// the cartesian-product index set, axis-aligned level-set bounds, and a
// pruned Neighborhood(1) bounded by local grid distances instead of the
// quadratic all-pairs default.
package interval
