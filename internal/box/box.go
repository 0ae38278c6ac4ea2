package box

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eps is the machine epsilon the boundary tolerance is derived from.
var Eps = math.Nextafter(1, 2) - 1

// Tol returns the closed-boundary tolerance for an interval [lo, hi]: a few
// ulps at the magnitude of the bounds, so points sitting exactly on a bound
// are never lost to the rounding accumulated while deriving the bound.
func Tol(lo, hi float64) float64 {
	s := math.Max(math.Abs(lo), math.Abs(hi))
	if s < 1 {
		s = 1
	}
	return 8 * Eps * s
}

// Box pairs per-dimension lower and upper bounds of an axis-aligned box.
type Box struct {
	Lower []float64
	Upper []float64
}

// Dim returns the dimensionality of the box.
func (b Box) Dim() int { return len(b.Lower) }

// Buffer is the reusable boolean membership scratch for one batch.
type Buffer []bool

// NewBuffer returns a scratch buffer for n points.
func NewBuffer(n int) Buffer { return make(Buffer, n) }

// members runs the closed-interval reduction for a single box, reusing buf.
// The test mirrors the per-column vectorized AND: a point survives iff every
// coordinate lies within [lo-Eps, hi+Eps] of its dimension.
func members(points *mat.Dense, lo, hi []float64, buf Buffer) []int {
	n, d := points.Dims()
	for i := range buf {
		buf[i] = true
	}
	for j := 0; j < d; j++ {
		t := Tol(lo[j], hi[j])
		lj, hj := lo[j]-t, hi[j]+t
		for i := 0; i < n; i++ {
			if !buf[i] {
				continue
			}
			v := points.At(i, j)
			if v < lj || v > hj {
				buf[i] = false
			}
		}
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if buf[i] {
			out = append(out, i)
		}
	}
	return out
}

func checkDims(points *mat.Dense, d int) error {
	_, pd := points.Dims()
	if pd != d {
		return fmt.Errorf("box: point dimension %d != bound dimension %d", pd, d)
	}
	return nil
}

// Members returns the row indices of points inside bx.
func Members(points *mat.Dense, bx Box, buf Buffer) ([]int, error) {
	if len(bx.Lower) != len(bx.Upper) {
		return nil, fmt.Errorf("box: lower/upper length mismatch: %d vs %d", len(bx.Lower), len(bx.Upper))
	}
	if err := checkDims(points, bx.Dim()); err != nil {
		return nil, err
	}
	if n, _ := points.Dims(); len(buf) != n {
		buf = NewBuffer(n)
	}
	return members(points, bx.Lower, bx.Upper, buf), nil
}

// Overlapping computes, for every box, the row indices of the points it
// contains. Boxes may overlap, so a point can appear under several boxes.
func Overlapping(points *mat.Dense, boxes []Box) ([][]int, error) {
	n, _ := points.Dims()
	buf := NewBuffer(n)
	out := make([][]int, len(boxes))
	for i, bx := range boxes {
		ids, err := Members(points, bx, buf)
		if err != nil {
			return nil, err
		}
		out[i] = ids
	}
	return out, nil
}

// Fixed computes level-set membership for a fixed interval grid. For the
// 1-based multi-index m, the box is centered at
// min + (m-1)*baseLen + baseLen/2 with half-width length/2. It returns the
// member rows and the realized bounds of every box, in index-set order.
func Fixed(points *mat.Dense, indexSet [][]int, baseLen, length, min []float64) ([][]int, []Box, error) {
	d := len(min)
	if len(baseLen) != d || len(length) != d {
		return nil, nil, fmt.Errorf("box: fixed grid vectors disagree on dimension")
	}
	if err := checkDims(points, d); err != nil {
		return nil, nil, err
	}
	n, _ := points.Dims()
	buf := NewBuffer(n)
	sets := make([][]int, len(indexSet))
	bounds := make([]Box, len(indexSet))
	for i, m := range indexSet {
		if len(m) != d {
			return nil, nil, fmt.Errorf("box: multi-index %v has dimension %d, want %d", m, len(m), d)
		}
		lo := make([]float64, d)
		hi := make([]float64, d)
		for j := 0; j < d; j++ {
			centroid := min[j] + float64(m[j]-1)*baseLen[j] + baseLen[j]/2
			lo[j] = centroid - length[j]/2
			hi[j] = centroid + length[j]/2
		}
		sets[i] = members(points, lo, hi, buf)
		bounds[i] = Box{Lower: lo, Upper: hi}
	}
	return sets, bounds, nil
}

// Restrained computes level-set membership for a grid parameterized directly
// by interval length and step size: the box of the 1-based multi-index m
// spans [min + (m-1)*step, min + (m-1)*step + length] per dimension. It
// returns member rows and realized bounds in index-set order.
func Restrained(points *mat.Dense, indexSet [][]int, length, step, min []float64) ([][]int, []Box, error) {
	d := len(min)
	if len(length) != d || len(step) != d {
		return nil, nil, fmt.Errorf("box: restrained grid vectors disagree on dimension")
	}
	if err := checkDims(points, d); err != nil {
		return nil, nil, err
	}
	n, _ := points.Dims()
	buf := NewBuffer(n)
	sets := make([][]int, len(indexSet))
	bounds := make([]Box, len(indexSet))
	for i, m := range indexSet {
		if len(m) != d {
			return nil, nil, fmt.Errorf("box: multi-index %v has dimension %d, want %d", m, len(m), d)
		}
		lo := make([]float64, d)
		hi := make([]float64, d)
		for j := 0; j < d; j++ {
			lo[j] = min[j] + float64(m[j]-1)*step[j]
			hi[j] = lo[j] + length[j]
		}
		sets[i] = members(points, lo, hi, buf)
		bounds[i] = Box{Lower: lo, Upper: hi}
	}
	return sets, bounds, nil
}
