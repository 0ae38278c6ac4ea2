package interval

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tdakit/mapper/cover"
	"github.com/tdakit/mapper/internal/box"
)

// FixedTypename is the registry identifier of the fixed interval cover.
const FixedTypename = "fixed interval"

// Fixed covers the filter space with a grid of equal-width overlapping
// intervals: number_intervals bins per dimension, each widened so adjacent
// bins share percent_overlap of their length.
type Fixed struct {
	grid
	numIntervals []int     // as assigned (length 1 or d)
	overlap      []float64 // percent, as assigned

	// realized per-dimension geometry, computed by Construct
	baseLength []float64
	length     []float64

	log *zap.Logger
}

// NewFixed creates a fixed interval cover over space. intervals and overlap
// may be nil and assigned later through the setters; passing invalid values
// fails immediately.
func NewFixed(space *cover.FilterSpace, intervals []int, overlap []float64, opts ...Option) (*Fixed, error) {
	if space == nil {
		return nil, fmt.Errorf("%w: nil filter space", cover.ErrInvalidParam)
	}
	s := newSettings(opts)
	f := &Fixed{grid: grid{space: space}, log: s.log}
	if intervals != nil {
		if err := f.SetNumberIntervals(intervals); err != nil {
			return nil, err
		}
	}
	if overlap != nil {
		if err := f.SetPercentOverlap(overlap); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Typename identifies the strategy for the external registry.
func (f *Fixed) Typename() string { return FixedTypename }

// Params lists the strategy parameters for the external registry.
func (f *Fixed) Params() []cover.Param {
	return []cover.Param{
		{Name: "number_intervals", Value: f.numIntervals},
		{Name: "percent_overlap", Value: f.overlap},
	}
}

// SetNumberIntervals assigns the per-dimension interval counts. The slice
// must have length 1 (broadcast) or the filter dimensionality, with every
// count positive.
func (f *Fixed) SetNumberIntervals(intervals []int) error {
	if len(intervals) != 1 && len(intervals) != f.space.Dim() {
		return fmt.Errorf("%w: number_intervals has %d entries for %d filter dimensions", cover.ErrInvalidParam, len(intervals), f.space.Dim())
	}
	for _, k := range intervals {
		if k <= 0 {
			return fmt.Errorf("%w: number_intervals %d, want > 0", cover.ErrInvalidParam, k)
		}
	}
	f.numIntervals = append([]int(nil), intervals...)
	return nil
}

// SetPercentOverlap assigns the per-dimension overlap percentages, each in
// [0, 100). 100 is rejected: it would imply an infinite interval length.
func (f *Fixed) SetPercentOverlap(overlap []float64) error {
	if len(overlap) != 1 && len(overlap) != f.space.Dim() {
		return fmt.Errorf("%w: percent_overlap has %d entries for %d filter dimensions", cover.ErrInvalidParam, len(overlap), f.space.Dim())
	}
	for _, p := range overlap {
		if p < 0 || p >= 100 {
			return fmt.Errorf("%w: percent_overlap %v, want in [0,100)", cover.ErrInvalidParam, p)
		}
	}
	f.overlap = append([]float64(nil), overlap...)
	return nil
}

// geometry broadcasts the parameters and derives the per-dimension base and
// realized interval lengths from the filter range.
func (f *Fixed) geometry() (intervals []int, baseLen, length, min []float64, err error) {
	if f.numIntervals == nil || f.overlap == nil {
		return nil, nil, nil, nil, cover.ErrNotConfigured
	}
	d := f.space.Dim()
	intervals, err = broadcastInts(f.numIntervals, d)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	overlap, err := broadcastFloats(f.overlap, d)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	min, max := f.space.Range()
	baseLen = make([]float64, d)
	length = make([]float64, d)
	for j := 0; j < d; j++ {
		baseLen[j] = (max[j] - min[j]) / float64(intervals[j])
		p := overlap[j] / 100
		length[j] = baseLen[j] + baseLen[j]*p/(1-p)
	}
	return intervals, baseLen, length, min, nil
}

// Construct computes the index set and level sets, replacing any previous
// result. It is idempotent for fixed parameters and may be re-invoked after
// a parameter change.
func (f *Fixed) Construct() error {
	intervals, baseLen, length, min, err := f.geometry()
	if err != nil {
		return err
	}
	indexSet := cartesianIndexSet(intervals)
	members, bounds, err := box.Fixed(f.space.Matrix(), rawIndices(indexSet), baseLen, length, min)
	if err != nil {
		return err
	}
	f.intervals = intervals
	f.baseLength = baseLen
	f.length = length
	f.finish(indexSet, members, bounds)
	f.log.Debug("constructed fixed interval cover",
		zap.Int("points", f.space.Len()),
		zap.Int("level_sets", len(indexSet)),
		zap.Float64s("interval_length", length))
	return nil
}

// ConstructAt computes the point set of the single level set keyed by idx
// without mutating the cover.
func (f *Fixed) ConstructAt(idx cover.Index) ([]int, error) {
	intervals, baseLen, length, min, err := f.geometry()
	if err != nil {
		return nil, err
	}
	d := len(intervals)
	if len(idx) != d {
		return nil, fmt.Errorf("%w: key %s has %d components, want %d", cover.ErrUnknownIndex, idx, len(idx), d)
	}
	lo := make([]float64, d)
	hi := make([]float64, d)
	for j := 0; j < d; j++ {
		if idx[j] < 1 || idx[j] > intervals[j] {
			return nil, fmt.Errorf("%w: key %s outside grid", cover.ErrUnknownIndex, idx)
		}
		centroid := min[j] + float64(idx[j]-1)*baseLen[j] + baseLen[j]/2
		lo[j] = centroid - length[j]/2
		hi[j] = centroid + length[j]/2
	}
	return box.Members(f.space.Matrix(), box.Box{Lower: lo, Upper: hi}, nil)
}

// Neighborhood returns nerve candidates. For k=1 the default quadratic
// generation is replaced by local grid neighborhoods: pairs whose
// multi-indices deviate per dimension by more than the realized interval
// length allows cannot intersect and are skipped.
func (f *Fixed) Neighborhood(k int) ([][]cover.Index, error) {
	return f.neighborhood(k, f.length, f.baseLength)
}

// IntervalLength returns the realized per-dimension interval lengths of the
// constructed cover.
func (f *Fixed) IntervalLength() ([]float64, error) {
	if f.length == nil {
		return nil, cover.ErrNotConstructed
	}
	return append([]float64(nil), f.length...), nil
}

var _ cover.Cover = (*Fixed)(nil)
