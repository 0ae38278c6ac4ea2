package graph

import (
	"fmt"
	"sort"

	"github.com/tdakit/mapper/cover"
)

// None marks an unused slot in a padded candidate row.
const None = -1

// Edge is a directed (from, to) pair of node ids. For the nerve the ids are
// level-set positions in index-set order.
type Edge struct {
	From int
	To   int
}

// AdjacencyList converts an edge list into a mapping from each "from" id to
// its "to" ids. List order preserves first-seen edge order and repeated
// edges are kept; nodes appearing only as "to" get no entry.
func AdjacencyList(edges []Edge) map[int][]int {
	adj := make(map[int][]int)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
	}
	return adj
}

// Froms returns the keys of an adjacency list in ascending order, for
// deterministic export.
func Froms(adj map[int][]int) []int {
	out := make([]int, 0, len(adj))
	for from := range adj {
		out = append(out, from)
	}
	sort.Ints(out)
	return out
}

// ValidPairs flattens padded candidate rows into an edge list. Each row is
// (from, to1, to2, ...) with unused slots set to None; one edge is emitted
// per used slot, in row order.
func ValidPairs(rows [][]int) []Edge {
	var out []Edge
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		from := row[0]
		for _, to := range row[1:] {
			if to == None {
				continue
			}
			out = append(out, Edge{From: from, To: to})
		}
	}
	return out
}

// Nerve filters candidate pairs down to the confirmed 1-skeleton: an edge is
// kept iff the two level sets share at least one point. Edges are emitted in
// candidate order with endpoints as index-set positions (From < To).
func Nerve(c cover.Cover, candidates [][]cover.Index) ([]Edge, error) {
	indexSet := c.IndexSet()
	if len(indexSet) == 0 {
		return nil, cover.ErrNotConstructed
	}
	// Positions keyed by the derived display form; keys are only ever
	// generated here, never parsed back.
	pos := make(map[string]int, len(indexSet))
	for i, idx := range indexSet {
		pos[idx.String()] = i
	}
	var out []Edge
	for _, pair := range candidates {
		if len(pair) != 2 {
			return nil, fmt.Errorf("graph: candidate %v is not a pair", pair)
		}
		pa, ok := pos[pair[0].String()]
		if !ok {
			return nil, fmt.Errorf("%w: key %s", cover.ErrUnknownIndex, pair[0])
		}
		pb, ok := pos[pair[1].String()]
		if !ok {
			return nil, fmt.Errorf("%w: key %s", cover.ErrUnknownIndex, pair[1])
		}
		a, err := c.LevelSet(pair[0])
		if err != nil {
			return nil, err
		}
		b, err := c.LevelSet(pair[1])
		if err != nil {
			return nil, err
		}
		if a.Intersects(b) {
			if pa > pb {
				pa, pb = pb, pa
			}
			out = append(out, Edge{From: pa, To: pb})
		}
	}
	return out, nil
}
