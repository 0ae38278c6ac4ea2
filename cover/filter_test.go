package cover

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewFilterSpace(t *testing.T) {
	f, err := NewFilterSpace(mat.NewDense(3, 2, []float64{0, 1, 2, 3, 4, 5}))
	require.NoError(t, err)
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 2, f.Dim())
	assert.Equal(t, 3.0, f.At(1, 1))
}

func TestNewFilterSpaceRejectsNaN(t *testing.T) {
	_, err := NewFilterSpace(mat.NewDense(2, 1, []float64{0, math.NaN()}))
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestNewFilterSpaceNil(t *testing.T) {
	_, err := NewFilterSpace(nil)
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestFilterSpaceFromRows(t *testing.T) {
	f, err := FilterSpaceFromRows([][]float64{{0, 1}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, f.Row(1, nil))
}

func TestFilterSpaceFromRowsRagged(t *testing.T) {
	_, err := FilterSpaceFromRows([][]float64{{0, 1}, {2}})
	require.ErrorIs(t, err, ErrDimension)
}

func TestRange(t *testing.T) {
	f, err := FilterSpaceFromRows([][]float64{{0, 5}, {10, -5}, {4, 0}})
	require.NoError(t, err)
	min, max := f.Range()
	assert.Equal(t, []float64{0, -5}, min)
	assert.Equal(t, []float64{10, 5}, max)
}
