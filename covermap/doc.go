// Package covermap computes the intersection relation between two
// independently built covers from their level-set bounds alone: (i, j) is in
// the relation iff level set i of the first cover and level set j of the
// second overlap as axis-aligned boxes. It is used to compare or refine
// covers built with different parameters, e.g. across scales.
package covermap
