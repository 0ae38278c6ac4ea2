package cover

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FilterSpace is the n×d matrix of filter (lens) values, one row per data
// point. It is treated as immutable once any cover has been constructed
// against it.
type FilterSpace struct {
	data *mat.Dense
	n, d int
}

// NewFilterSpace wraps an n×d matrix of filter values. Values must be
// finite.
func NewFilterSpace(values *mat.Dense) (*FilterSpace, error) {
	if values == nil {
		return nil, fmt.Errorf("%w: nil filter matrix", ErrInvalidParam)
	}
	n, d := values.Dims()
	if n == 0 || d == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d filter matrix", ErrInvalidParam, n, d)
	}
	if floats.HasNaN(values.RawMatrix().Data) {
		return nil, fmt.Errorf("%w: filter values contain NaN", ErrInvalidParam)
	}
	return &FilterSpace{data: values, n: n, d: d}, nil
}

// FilterSpaceFromRows builds a FilterSpace from per-point rows, all of the
// same length.
func FilterSpaceFromRows(rows [][]float64) (*FilterSpace, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no filter rows", ErrInvalidParam)
	}
	d := len(rows[0])
	m := mat.NewDense(len(rows), d, nil)
	for i, r := range rows {
		if len(r) != d {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrDimension, i, len(r), d)
		}
		m.SetRow(i, r)
	}
	return NewFilterSpace(m)
}

// Len returns the number of points n.
func (f *FilterSpace) Len() int { return f.n }

// Dim returns the number of filter dimensions d.
func (f *FilterSpace) Dim() int { return f.d }

// At returns the filter value of point i in dimension j.
func (f *FilterSpace) At(i, j int) float64 { return f.data.At(i, j) }

// Matrix exposes the backing matrix for batch kernels. Callers must not
// mutate it.
func (f *FilterSpace) Matrix() *mat.Dense { return f.data }

// Row copies the filter values of point i into dst (allocated when nil).
func (f *FilterSpace) Row(i int, dst []float64) []float64 {
	return mat.Row(dst, i, f.data)
}

// Range returns the per-dimension minimum and maximum filter values.
func (f *FilterSpace) Range() (min, max []float64) {
	min = make([]float64, f.d)
	max = make([]float64, f.d)
	col := make([]float64, f.n)
	for j := 0; j < f.d; j++ {
		mat.Col(col, j, f.data)
		min[j] = floats.Min(col)
		max[j] = floats.Max(col)
	}
	return min, max
}
