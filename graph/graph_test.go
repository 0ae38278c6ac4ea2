package graph

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdakit/mapper/cover"
	"github.com/tdakit/mapper/cover/interval"
)

func TestAdjacencyList(t *testing.T) {
	edges := []Edge{{1, 2}, {1, 3}, {2, 3}}
	adj := AdjacencyList(edges)

	want := map[int][]int{1: {2, 3}, 2: {3}}
	if diff := cmp.Diff(want, adj); diff != "" {
		t.Fatalf("adjacency mismatch (-want +got):\n%s", diff)
	}
	// Node 3 only appears as a destination.
	_, ok := adj[3]
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2}, Froms(adj))
}

func TestAdjacencyListKeepsDuplicates(t *testing.T) {
	edges := []Edge{{1, 2}, {1, 2}, {1, 4}}
	adj := AdjacencyList(edges)
	assert.Equal(t, []int{2, 2, 4}, adj[1])
}

func TestValidPairs(t *testing.T) {
	rows := [][]int{
		{0, 1, None},
		{1, None, None},
		{2, 3, 4},
	}
	got := ValidPairs(rows)
	want := []Edge{{0, 1}, {2, 3}, {2, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("edge list mismatch (-want +got):\n%s", diff)
	}
}

func gridCover(t *testing.T) *interval.Fixed {
	t.Helper()
	rng := rand.New(rand.NewSource(31))
	rows := make([][]float64, 250)
	for i := range rows {
		rows[i] = []float64{rng.Float64() * 6, rng.Float64() * 6}
	}
	space, err := cover.FilterSpaceFromRows(rows)
	require.NoError(t, err)
	f, err := interval.NewFixed(space, []int{3, 3}, []float64{35})
	require.NoError(t, err)
	require.NoError(t, f.Construct())
	return f
}

func TestNervePrunedMatchesAllPairs(t *testing.T) {
	c := gridCover(t)

	pruned, err := c.Neighborhood(1)
	require.NoError(t, err)
	prunedEdges, err := Nerve(c, pruned)
	require.NoError(t, err)

	all, err := cover.Combinations(c.IndexSet(), 1)
	require.NoError(t, err)
	allEdges, err := Nerve(c, all)
	require.NoError(t, err)

	// Pruning is a conservative superset of the true pairs, so the confirmed
	// skeletons agree.
	assert.ElementsMatch(t, allEdges, prunedEdges)
	require.NotEmpty(t, allEdges)
}

func TestNerveUnknownKey(t *testing.T) {
	c := gridCover(t)
	_, err := Nerve(c, [][]cover.Index{{cover.Index{9, 9}, cover.Index{1, 1}}})
	assert.ErrorIs(t, err, cover.ErrUnknownIndex)
}

func TestNerveRejectsNonPairs(t *testing.T) {
	c := gridCover(t)
	_, err := Nerve(c, [][]cover.Index{{cover.Index{1, 1}}})
	assert.Error(t, err)
}

func TestNerveFeedsAdjacency(t *testing.T) {
	c := gridCover(t)
	cands, err := c.Neighborhood(1)
	require.NoError(t, err)
	edges, err := Nerve(c, cands)
	require.NoError(t, err)

	adj := AdjacencyList(edges)
	for _, from := range Froms(adj) {
		for _, to := range adj[from] {
			assert.Less(t, from, to)
		}
	}
}
