package interval

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/tdakit/mapper/cover"
	"github.com/tdakit/mapper/internal/box"
	"github.com/tdakit/mapper/internal/logging"
)

// devSlack absorbs rounding when turning a length ratio into a grid
// deviation; it only ever widens the candidate set.
const devSlack = 1e-9

// Option configures a grid cover at construction time.
type Option func(*settings)

type settings struct {
	log *zap.Logger
}

// WithLogger injects a logger for construction diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(s *settings) { s.log = log }
}

func newSettings(opts []Option) settings {
	s := settings{log: logging.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// grid carries the constructed state shared by the Fixed and Restrained
// covers: the broadcast interval counts, the cartesian index set, and the
// level sets in index-set order.
type grid struct {
	space     *cover.FilterSpace
	intervals []int // per dimension, broadcast
	indexSet  []cover.Index
	sets      []*cover.LevelSet
}

// IndexSet returns the ordered level-set keys.
func (g *grid) IndexSet() []cover.Index { return g.indexSet }

// LevelSets returns all level sets in index-set order.
func (g *grid) LevelSets() []*cover.LevelSet { return g.sets }

// LevelSet returns the level set keyed by the given multi-index.
func (g *grid) LevelSet(idx cover.Index) (*cover.LevelSet, error) {
	if g.sets == nil {
		return nil, cover.ErrNotConstructed
	}
	pos, err := g.rank(idx)
	if err != nil {
		return nil, err
	}
	return g.sets[pos], nil
}

// Validate checks the structural invariants of the constructed cover.
func (g *grid) Validate() error {
	if g.sets == nil {
		return cover.ErrNotConstructed
	}
	return cover.Check(g.space.Len(), g.indexSet, g.sets)
}

// rank maps a 1-based multi-index to its row-major position in the index
// set.
func (g *grid) rank(idx cover.Index) (int, error) {
	if len(idx) != len(g.intervals) {
		return 0, fmt.Errorf("%w: key %s has %d components, want %d", cover.ErrUnknownIndex, idx, len(idx), len(g.intervals))
	}
	pos := 0
	for j, v := range idx {
		if v < 1 || v > g.intervals[j] {
			return 0, fmt.Errorf("%w: key %s outside grid", cover.ErrUnknownIndex, idx)
		}
		pos = pos*g.intervals[j] + (v - 1)
	}
	return pos, nil
}

// finish stores the constructed level sets, pairing each multi-index with
// its member rows and realized bounds.
func (g *grid) finish(indexSet []cover.Index, members [][]int, bounds []box.Box) {
	sets := make([]*cover.LevelSet, len(indexSet))
	for i := range indexSet {
		sets[i] = &cover.LevelSet{
			Index:  indexSet[i],
			Points: members[i],
			Bounds: &cover.Bounds{Lower: bounds[i].Lower, Upper: bounds[i].Upper},
		}
	}
	g.indexSet = indexSet
	g.sets = sets
}

// neighborhood dispatches between the pruned pair generator and the
// all-combinations default. spacing is the per-dimension centroid distance
// between adjacent grid cells; length is the realized interval length. Both
// are used to derive the maximum grid deviation beyond which two cells'
// boxes cannot overlap.
func (g *grid) neighborhood(k int, length, spacing []float64) ([][]cover.Index, error) {
	if g.sets == nil {
		return nil, cover.ErrNotConstructed
	}
	if k != 1 {
		return cover.Combinations(g.indexSet, k)
	}
	maxDev := make([]int, len(g.intervals))
	for j := range maxDev {
		if spacing[j] <= 0 {
			// Degenerate dimension (zero filter range): every cell coincides.
			maxDev[j] = g.intervals[j] - 1
			continue
		}
		maxDev[j] = int(math.Floor(length[j]/spacing[j] + devSlack))
	}
	return g.prunedPairs(maxDev), nil
}

// prunedPairs returns the candidate pairs whose multi-indices deviate by at
// most maxDev in every dimension. Cells further apart than the critical
// centroid distance in any dimension cannot have overlapping boxes, so the
// result is a conservative superset of the truly intersecting pairs.
func (g *grid) prunedPairs(maxDev []int) [][]cover.Index {
	d := len(g.intervals)
	var out [][]cover.Index
	offset := make([]int, d)
	neighborIdx := make(cover.Index, d)
	for pos, m := range g.indexSet {
		for j := range offset {
			offset[j] = -maxDev[j]
		}
		for {
			valid := true
			for j := 0; j < d; j++ {
				v := m[j] + offset[j]
				if v < 1 || v > g.intervals[j] {
					valid = false
					break
				}
				neighborIdx[j] = v
			}
			if valid {
				if qpos, err := g.rank(neighborIdx); err == nil && qpos > pos {
					out = append(out, []cover.Index{m, g.indexSet[qpos]})
				}
			}
			// Odometer over the offset box, last dimension fastest.
			j := d - 1
			for j >= 0 {
				offset[j]++
				if offset[j] <= maxDev[j] {
					break
				}
				offset[j] = -maxDev[j]
				j--
			}
			if j < 0 {
				break
			}
		}
	}
	return out
}

// cartesianIndexSet generates the 1-based multi-indices of the grid in
// row-major (lexicographic) order.
func cartesianIndexSet(intervals []int) []cover.Index {
	total := 1
	for _, k := range intervals {
		total *= k
	}
	d := len(intervals)
	out := make([]cover.Index, 0, total)
	current := make([]int, d)
	for i := range current {
		current[i] = 1
	}
	for {
		idx := make(cover.Index, d)
		copy(idx, current)
		out = append(out, idx)

		j := d - 1
		for j >= 0 {
			current[j]++
			if current[j] <= intervals[j] {
				break
			}
			current[j] = 1
			j--
		}
		if j < 0 {
			return out
		}
	}
}

// rawIndices adapts the index set for the box kernels.
func rawIndices(indexSet []cover.Index) [][]int {
	out := make([][]int, len(indexSet))
	for i := range indexSet {
		out[i] = indexSet[i]
	}
	return out
}

// broadcastInts validates a per-dimension integer parameter: length 1
// broadcasts to all d dimensions, otherwise the length must equal d.
func broadcastInts(vals []int, d int) ([]int, error) {
	if len(vals) != 1 && len(vals) != d {
		return nil, fmt.Errorf("%w: got %d values for %d filter dimensions", cover.ErrDimension, len(vals), d)
	}
	out := make([]int, d)
	for j := range out {
		if len(vals) == 1 {
			out[j] = vals[0]
		} else {
			out[j] = vals[j]
		}
	}
	return out, nil
}

func broadcastFloats(vals []float64, d int) ([]float64, error) {
	if len(vals) != 1 && len(vals) != d {
		return nil, fmt.Errorf("%w: got %d values for %d filter dimensions", cover.ErrDimension, len(vals), d)
	}
	out := make([]float64, d)
	for j := range out {
		if len(vals) == 1 {
			out[j] = vals[0]
		} else {
			out[j] = vals[j]
		}
	}
	return out, nil
}
