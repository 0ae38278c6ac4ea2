package interval

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tdakit/mapper/cover"
	"github.com/tdakit/mapper/internal/box"
)

// RestrainedTypename is the registry identifier of the restrained interval
// cover.
const RestrainedTypename = "restrained interval"

// Restrained covers the filter space with a grid parameterized directly by
// interval_length and step_size instead of an overlap percentage: the cell
// with multi-index m spans [min + (m-1)*step, min + (m-1)*step + length] per
// dimension.
type Restrained struct {
	grid
	numIntervals []int
	lengthParam  []float64 // as assigned
	stepParam    []float64 // as assigned

	// broadcast geometry, computed by Construct
	length []float64
	step   []float64

	log *zap.Logger
}

// NewRestrained creates a restrained interval cover over space. Parameters
// may be nil and assigned later through the setters.
func NewRestrained(space *cover.FilterSpace, intervals []int, length, step []float64, opts ...Option) (*Restrained, error) {
	if space == nil {
		return nil, fmt.Errorf("%w: nil filter space", cover.ErrInvalidParam)
	}
	s := newSettings(opts)
	r := &Restrained{grid: grid{space: space}, log: s.log}
	if intervals != nil {
		if err := r.SetNumberIntervals(intervals); err != nil {
			return nil, err
		}
	}
	if length != nil {
		if err := r.SetIntervalLength(length); err != nil {
			return nil, err
		}
	}
	if step != nil {
		if err := r.SetStepSize(step); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Typename identifies the strategy for the external registry.
func (r *Restrained) Typename() string { return RestrainedTypename }

// Params lists the strategy parameters for the external registry.
func (r *Restrained) Params() []cover.Param {
	return []cover.Param{
		{Name: "number_intervals", Value: r.numIntervals},
		{Name: "interval_length", Value: r.lengthParam},
		{Name: "step_size", Value: r.stepParam},
	}
}

// SetNumberIntervals assigns the per-dimension interval counts, length 1
// (broadcast) or the filter dimensionality, every count positive.
func (r *Restrained) SetNumberIntervals(intervals []int) error {
	if len(intervals) != 1 && len(intervals) != r.space.Dim() {
		return fmt.Errorf("%w: number_intervals has %d entries for %d filter dimensions", cover.ErrInvalidParam, len(intervals), r.space.Dim())
	}
	for _, k := range intervals {
		if k <= 0 {
			return fmt.Errorf("%w: number_intervals %d, want > 0", cover.ErrInvalidParam, k)
		}
	}
	r.numIntervals = append([]int(nil), intervals...)
	return nil
}

// SetIntervalLength assigns the per-dimension interval lengths, each
// positive.
func (r *Restrained) SetIntervalLength(length []float64) error {
	if len(length) != 1 && len(length) != r.space.Dim() {
		return fmt.Errorf("%w: interval_length has %d entries for %d filter dimensions", cover.ErrInvalidParam, len(length), r.space.Dim())
	}
	for _, l := range length {
		if l <= 0 {
			return fmt.Errorf("%w: interval_length %v, want > 0", cover.ErrInvalidParam, l)
		}
	}
	r.lengthParam = append([]float64(nil), length...)
	return nil
}

// SetStepSize assigns the per-dimension distances between the lower bounds
// of consecutive intervals, each positive and no larger than the interval
// length (a larger step would leave gaps between cells).
func (r *Restrained) SetStepSize(step []float64) error {
	if len(step) != 1 && len(step) != r.space.Dim() {
		return fmt.Errorf("%w: step_size has %d entries for %d filter dimensions", cover.ErrInvalidParam, len(step), r.space.Dim())
	}
	for _, s := range step {
		if s <= 0 {
			return fmt.Errorf("%w: step_size %v, want > 0", cover.ErrInvalidParam, s)
		}
	}
	r.stepParam = append([]float64(nil), step...)
	return nil
}

// geometry broadcasts the parameters and verifies the grid still covers the
// filter range.
func (r *Restrained) geometry() (intervals []int, length, step, min []float64, err error) {
	if r.numIntervals == nil || r.lengthParam == nil || r.stepParam == nil {
		return nil, nil, nil, nil, cover.ErrNotConfigured
	}
	d := r.space.Dim()
	intervals, err = broadcastInts(r.numIntervals, d)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	length, err = broadcastFloats(r.lengthParam, d)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	step, err = broadcastFloats(r.stepParam, d)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	var max []float64
	min, max = r.space.Range()
	for j := 0; j < d; j++ {
		if step[j] > length[j] {
			return nil, nil, nil, nil, fmt.Errorf("%w: step_size %v exceeds interval_length %v in dimension %d", cover.ErrInvalidParam, step[j], length[j], j)
		}
		reach := min[j] + float64(intervals[j]-1)*step[j] + length[j]
		if reach < max[j]-box.Tol(min[j], max[j]) {
			return nil, nil, nil, nil, fmt.Errorf("%w: grid reaches %v but filter dimension %d extends to %v", cover.ErrInvalidParam, reach, j, max[j])
		}
	}
	return intervals, length, step, min, nil
}

// Construct computes the index set and level sets, replacing any previous
// result.
func (r *Restrained) Construct() error {
	intervals, length, step, min, err := r.geometry()
	if err != nil {
		return err
	}
	indexSet := cartesianIndexSet(intervals)
	members, bounds, err := box.Restrained(r.space.Matrix(), rawIndices(indexSet), length, step, min)
	if err != nil {
		return err
	}
	r.intervals = intervals
	r.length = length
	r.step = step
	r.finish(indexSet, members, bounds)
	r.log.Debug("constructed restrained interval cover",
		zap.Int("points", r.space.Len()),
		zap.Int("level_sets", len(indexSet)),
		zap.Float64s("interval_length", length),
		zap.Float64s("step_size", step))
	return nil
}

// ConstructAt computes the point set of the single level set keyed by idx
// without mutating the cover.
func (r *Restrained) ConstructAt(idx cover.Index) ([]int, error) {
	intervals, length, step, min, err := r.geometry()
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
		lo[j] = min[j] + float64(idx[j]-1)*step[j]
		hi[j] = lo[j] + length[j]
	}
	return box.Members(r.space.Matrix(), box.Box{Lower: lo, Upper: hi}, nil)
}

// Neighborhood returns nerve candidates, pruning k=1 by grid locality: cell
// centroids sit step_size apart, so two cells further than
// interval_length/step_size grid units apart in any dimension cannot
// overlap.
func (r *Restrained) Neighborhood(k int) ([][]cover.Index, error) {
	return r.neighborhood(k, r.length, r.step)
}

var _ cover.Cover = (*Restrained)(nil)
