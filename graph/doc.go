// Package graph turns candidate level-set tuples into the combinatorial
// 1-skeleton of the Mapper graph and reshapes edge lists for the external
// graph exporter: Nerve confirms candidate pairs against the actual level
// sets, ValidPairs flattens padded candidate rows, and AdjacencyList builds
// the directed adjacency view the exporter consumes.
package graph
