package neighbor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/viant/vec/search"
)

// Point is one filter point loaded into the tree: its row in the filter
// matrix, its coordinates, and a cached magnitude for cosine distance.
type Point struct {
	Row       int
	Magnitude float32
	Vector    []float32
}

// NewPoint constructs a point for the given row and coordinates.
func NewPoint(row int, vector []float32) Point {
	p := Point{Row: row, Vector: vector}
	if len(vector) > 0 {
		p.Magnitude = search.Float32s(vector).Magnitude()
	}
	return p
}

// PointsFromMatrix converts the rows of a float64 matrix into tree points.
// The distance kernels operate on float32 vectors, so coordinates are
// narrowed once here rather than per comparison.
func PointsFromMatrix(m *mat.Dense) []Point {
	n, d := m.Dims()
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		v := make([]float32, d)
		for j := 0; j < d; j++ {
			v[j] = float32(m.At(i, j))
		}
		points[i] = NewPoint(i, v)
	}
	return points
}
