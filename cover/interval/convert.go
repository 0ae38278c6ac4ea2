package interval

import (
	"fmt"

	"github.com/tdakit/mapper/cover"
)

// OverlapToLength converts percent overlaps into the absolute interval
// lengths they induce for the given interval counts and per-dimension filter
// spans (max - min). With base = span/intervals, the realized length is
// base/(1-p): the closed-form interval width that yields overlap fraction p
// between adjacent equal-width bins.
func OverlapToLength(overlap []float64, intervals []int, span []float64) ([]float64, error) {
	d := len(span)
	ovl, err := broadcastFloats(overlap, d)
	if err != nil {
		return nil, err
	}
	ivals, err := broadcastInts(intervals, d)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d)
	for j := 0; j < d; j++ {
		if ovl[j] < 0 || ovl[j] >= 100 {
			return nil, fmt.Errorf("%w: percent_overlap %v, want in [0,100)", cover.ErrInvalidParam, ovl[j])
		}
		if ivals[j] <= 0 {
			return nil, fmt.Errorf("%w: number_intervals %d, want > 0", cover.ErrInvalidParam, ivals[j])
		}
		base := span[j] / float64(ivals[j])
		p := ovl[j] / 100
		out[j] = base / (1 - p)
	}
	return out, nil
}

// LengthToOverlap inverts OverlapToLength: given realized interval lengths,
// it recovers the percent overlap between adjacent bins,
// 100*(length-base)/length. Lengths below the base width would leave gaps
// between bins and are rejected.
func LengthToOverlap(length []float64, intervals []int, span []float64) ([]float64, error) {
	d := len(span)
	lens, err := broadcastFloats(length, d)
	if err != nil {
		return nil, err
	}
	ivals, err := broadcastInts(intervals, d)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d)
	for j := 0; j < d; j++ {
		if ivals[j] <= 0 {
			return nil, fmt.Errorf("%w: number_intervals %d, want > 0", cover.ErrInvalidParam, ivals[j])
		}
		base := span[j] / float64(ivals[j])
		if lens[j] < base {
			return nil, fmt.Errorf("%w: interval_length %v below base width %v leaves gaps", cover.ErrInvalidParam, lens[j], base)
		}
		if lens[j] == 0 {
			out[j] = 0
			continue
		}
		out[j] = 100 * (lens[j] - base) / lens[j]
	}
	return out, nil
}
