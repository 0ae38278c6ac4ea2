package interval

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdakit/mapper/cover"
	"github.com/tdakit/mapper/internal/logging"
)

// lineSpace covers the integers 0..10 in one filter dimension: range 10, so
// five intervals give a base width of exactly 2.
func lineSpace(t *testing.T) *cover.FilterSpace {
	t.Helper()
	rows := make([][]float64, 11)
	for i := range rows {
		rows[i] = []float64{float64(i)}
	}
	space, err := cover.FilterSpaceFromRows(rows)
	require.NoError(t, err)
	return space
}

func planeSpace(t *testing.T, n int, seed int64) *cover.FilterSpace {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{rng.Float64() * 10, rng.Float64() * 10}
	}
	space, err := cover.FilterSpaceFromRows(rows)
	require.NoError(t, err)
	return space
}

func TestFixedNoOverlap(t *testing.T) {
	f, err := NewFixed(lineSpace(t), []int{5}, []float64{0})
	require.NoError(t, err)
	require.NoError(t, f.Construct())
	require.NoError(t, f.Validate())

	indexSet := f.IndexSet()
	require.Len(t, indexSet, 5)
	for i, idx := range indexSet {
		assert.Equal(t, cover.Index{i + 1}, idx)
	}

	length, err := f.IntervalLength()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, length[0], 1e-12)

	// Level sets centered at 1,3,5,7,9, each spanning exactly 2 units.
	for i, ls := range f.LevelSets() {
		require.NotNil(t, ls.Bounds)
		assert.InDelta(t, float64(2*i), ls.Bounds.Lower[0], 1e-9)
		assert.InDelta(t, float64(2*i+2), ls.Bounds.Upper[0], 1e-9)
	}

	// Adjacent level sets touch but do not overlap beyond the shared
	// boundary point.
	sets := f.LevelSets()
	assert.Equal(t, []int{0, 1, 2}, sets[0].Points)
	assert.Equal(t, []int{2, 3, 4}, sets[1].Points)
	assert.Equal(t, []int{8, 9, 10}, sets[4].Points)
}

func TestFixedFiftyPercentOverlap(t *testing.T) {
	f, err := NewFixed(lineSpace(t), []int{5}, []float64{50})
	require.NoError(t, err)
	require.NoError(t, f.Construct())

	length, err := f.IntervalLength()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, length[0], 1e-12)

	want := [][2]float64{{-1, 3}, {1, 5}, {3, 7}, {5, 9}, {7, 11}}
	sets := f.LevelSets()
	require.Len(t, sets, 5)
	for i, ls := range sets {
		assert.InDelta(t, want[i][0], ls.Bounds.Lower[0], 1e-9)
		assert.InDelta(t, want[i][1], ls.Bounds.Upper[0], 1e-9)
	}
	// Each adjacent pair overlaps in a length-2 region.
	for i := 0; i+1 < len(sets); i++ {
		overlap := sets[i].Bounds.Upper[0] - sets[i+1].Bounds.Lower[0]
		assert.InDelta(t, 2.0, overlap, 1e-9)
		assert.True(t, sets[i].Intersects(sets[i+1]))
	}
}

func TestFixedOverlapMonotonicity(t *testing.T) {
	space := planeSpace(t, 150, 7)
	var prevLen []float64
	var prevCounts []int
	for _, p := range []float64{0, 10, 25, 50, 75, 90} {
		f, err := NewFixed(space, []int{4}, []float64{p})
		require.NoError(t, err)
		require.NoError(t, f.Construct())
		require.NoError(t, f.Validate())

		length, err := f.IntervalLength()
		require.NoError(t, err)
		counts := make([]int, 0, len(f.LevelSets()))
		for _, ls := range f.LevelSets() {
			counts = append(counts, len(ls.Points))
		}
		if prevLen != nil {
			for j := range length {
				assert.GreaterOrEqual(t, length[j], prevLen[j], "overlap %v dim %d", p, j)
			}
			for i := range counts {
				assert.GreaterOrEqual(t, counts[i], prevCounts[i], "overlap %v level set %d", p, i)
			}
		}
		prevLen, prevCounts = length, counts
	}
}

func pairKey(a, b cover.Index) string {
	if cover.Compare(a, b) > 0 {
		a, b = b, a
	}
	return fmt.Sprintf("%s-%s", a, b)
}

func TestFixedNeighborhoodSupersetOfTruePairs(t *testing.T) {
	space := planeSpace(t, 400, 11)
	f, err := NewFixed(space, []int{3, 3}, []float64{30}, WithLogger(logging.Default()))
	require.NoError(t, err)
	require.NoError(t, f.Construct())

	candidates, err := f.Neighborhood(1)
	require.NoError(t, err)
	candidateSet := make(map[string]bool, len(candidates))
	for _, pair := range candidates {
		require.Len(t, pair, 2)
		candidateSet[pairKey(pair[0], pair[1])] = true
	}

	// Brute force: every truly intersecting pair must be a candidate.
	allPairs, err := cover.Combinations(f.IndexSet(), 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(candidates), len(allPairs))
	truePairs := 0
	for _, pair := range allPairs {
		a, err := f.LevelSet(pair[0])
		require.NoError(t, err)
		b, err := f.LevelSet(pair[1])
		require.NoError(t, err)
		if a.Intersects(b) {
			truePairs++
			assert.True(t, candidateSet[pairKey(pair[0], pair[1])],
				"intersecting pair %s %s missing from candidates", pair[0], pair[1])
		}
	}
	require.Positive(t, truePairs)
}

func TestFixedNeighborhoodHigherOrderFallsBack(t *testing.T) {
	f, err := NewFixed(lineSpace(t), []int{5}, []float64{50})
	require.NoError(t, err)
	require.NoError(t, f.Construct())

	triples, err := f.Neighborhood(2)
	require.NoError(t, err)
	assert.Len(t, triples, 10) // C(5,3)
}

func TestFixedConstructBeforeParams(t *testing.T) {
	f, err := NewFixed(lineSpace(t), nil, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, f.Construct(), cover.ErrNotConfigured)
	_, err = f.ConstructAt(cover.Index{1})
	assert.ErrorIs(t, err, cover.ErrNotConfigured)
	assert.ErrorIs(t, f.Validate(), cover.ErrNotConstructed)
}

func TestFixedSetterValidation(t *testing.T) {
	space := planeSpace(t, 10, 3)
	_, err := NewFixed(space, []int{0}, []float64{0})
	assert.ErrorIs(t, err, cover.ErrInvalidParam)

	_, err = NewFixed(space, []int{3}, []float64{100})
	assert.ErrorIs(t, err, cover.ErrInvalidParam)

	_, err = NewFixed(space, []int{3}, []float64{-1})
	assert.ErrorIs(t, err, cover.ErrInvalidParam)

	_, err = NewFixed(space, []int{3, 3, 3}, []float64{0})
	assert.ErrorIs(t, err, cover.ErrInvalidParam)
}

func TestFixedReconstructAfterParameterChange(t *testing.T) {
	f, err := NewFixed(lineSpace(t), []int{5}, []float64{0})
	require.NoError(t, err)
	require.NoError(t, f.Construct())
	require.Len(t, f.IndexSet(), 5)

	require.NoError(t, f.SetNumberIntervals([]int{3}))
	require.NoError(t, f.Construct())
	assert.Len(t, f.IndexSet(), 3)
	require.NoError(t, f.Validate())
}

func TestFixedConstructAtMatchesConstruct(t *testing.T) {
	space := planeSpace(t, 120, 5)
	f, err := NewFixed(space, []int{3, 2}, []float64{20})
	require.NoError(t, err)

	// Single-key construction works before any global construction.
	early, err := f.ConstructAt(cover.Index{2, 1})
	require.NoError(t, err)

	require.NoError(t, f.Construct())
	ls, err := f.LevelSet(cover.Index{2, 1})
	require.NoError(t, err)
	assert.Equal(t, ls.Points, early)

	for _, idx := range f.IndexSet() {
		pts, err := f.ConstructAt(idx)
		require.NoError(t, err)
		ls, err := f.LevelSet(idx)
		require.NoError(t, err)
		assert.Equal(t, ls.Points, pts)
	}

	_, err = f.ConstructAt(cover.Index{4, 1})
	assert.ErrorIs(t, err, cover.ErrUnknownIndex)
}

func TestFixedTypenameAndParams(t *testing.T) {
	f, err := NewFixed(lineSpace(t), []int{5}, []float64{25})
	require.NoError(t, err)
	assert.Equal(t, "fixed interval", f.Typename())

	params := f.Params()
	require.Len(t, params, 2)
	assert.Equal(t, "number_intervals", params[0].Name)
	assert.Equal(t, []int{5}, params[0].Value)
	assert.Equal(t, "percent_overlap", params[1].Name)
	assert.Equal(t, []float64{25}, params[1].Value)
}

func TestOverlapLengthConversions(t *testing.T) {
	span := []float64{10}
	length, err := OverlapToLength([]float64{0}, []int{5}, span)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, length[0], 1e-12)

	length, err = OverlapToLength([]float64{50}, []int{5}, span)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, length[0], 1e-12)

	back, err := LengthToOverlap(length, []int{5}, span)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, back[0], 1e-12)

	_, err = OverlapToLength([]float64{100}, []int{5}, span)
	assert.ErrorIs(t, err, cover.ErrInvalidParam)

	_, err = LengthToOverlap([]float64{1}, []int{5}, span)
	assert.ErrorIs(t, err, cover.ErrInvalidParam)
}
