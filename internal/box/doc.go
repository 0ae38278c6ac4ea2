// Package box implements batch membership of points in axis-aligned boxes: a
// closed per-dimension interval test ANDed across dimensions, evaluated as a
// boolean reduction over all points at once. A single scratch buffer sized to
// the point count is reused across every box of a batch. The Fixed and
// Restrained variants additionally derive each box's bounds from a grid
// parameterization and return them for downstream use.
package box
