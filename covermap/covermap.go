package covermap

import (
	"fmt"

	"github.com/tdakit/mapper/cover"
)

// Pair records that level set From of the first cover intersects level set
// To of the second. Both are positions in the respective index sets.
type Pair struct {
	From int
	To   int
}

// Relation emits (i, j) for every pair of bounds that overlap in all dim
// dimensions: lowerA <= upperB and upperA >= lowerB per dimension. Pairs are
// emitted in row-major (i, then j) order. The relation is not symmetric
// unless both covers are identical.
func Relation(a, b []cover.Bounds, dim int) ([]Pair, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimensionality %d", cover.ErrDimension, dim)
	}
	for i := range a {
		if a[i].Dim() != dim || len(a[i].Upper) != dim {
			return nil, fmt.Errorf("%w: first cover bound %d has dimension %d, want %d", cover.ErrDimension, i, a[i].Dim(), dim)
		}
	}
	for j := range b {
		if b[j].Dim() != dim || len(b[j].Upper) != dim {
			return nil, fmt.Errorf("%w: second cover bound %d has dimension %d, want %d", cover.ErrDimension, j, b[j].Dim(), dim)
		}
	}
	var out []Pair
	for i := range a {
		for j := range b {
			if a[i].Overlaps(b[j]) {
				out = append(out, Pair{From: i, To: j})
			}
		}
	}
	return out, nil
}

// FromCovers derives the relation between two constructed covers whose level
// sets carry bounds. Covers without bounds (e.g. the ball cover) cannot be
// related this way.
func FromCovers(a, b cover.Cover) ([]Pair, error) {
	ba, dim, err := collectBounds(a)
	if err != nil {
		return nil, err
	}
	bb, dimB, err := collectBounds(b)
	if err != nil {
		return nil, err
	}
	if dim != dimB {
		return nil, fmt.Errorf("%w: covers have dimensions %d and %d", cover.ErrDimension, dim, dimB)
	}
	return Relation(ba, bb, dim)
}

func collectBounds(c cover.Cover) ([]cover.Bounds, int, error) {
	sets := c.LevelSets()
	if len(sets) == 0 {
		return nil, 0, cover.ErrNotConstructed
	}
	out := make([]cover.Bounds, len(sets))
	for i, ls := range sets {
		if ls.Bounds == nil {
			return nil, 0, fmt.Errorf("cover %s: level set %s has no bounds", c.Typename(), ls.Index)
		}
		out[i] = *ls.Bounds
	}
	return out, out[0].Dim(), nil
}
