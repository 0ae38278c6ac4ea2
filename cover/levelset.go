package cover

// Bounds are the per-dimension closed lower/upper bounds of an axis-aligned
// level set.
type Bounds struct {
	Lower []float64
	Upper []float64
}

// Dim returns the dimensionality of the bounds.
func (b Bounds) Dim() int { return len(b.Lower) }

// Overlaps reports whether two boxes intersect: per dimension, the standard
// closed interval-overlap test, ANDed across dimensions.
func (b Bounds) Overlaps(o Bounds) bool {
	if b.Dim() != o.Dim() {
		return false
	}
	for d := range b.Lower {
		if b.Lower[d] > o.Upper[d] || b.Upper[d] < o.Lower[d] {
			return false
		}
	}
	return true
}

// LevelSet is one member of a cover: the rows of the filter points it
// contains, plus geometric bounds when the producing strategy is
// axis-aligned (nil for the ball cover).
type LevelSet struct {
	Index  Index
	Points []int
	Bounds *Bounds
}

// Contains reports whether the level set holds the given point row.
// Points are kept in ascending row order, so this is a binary search.
func (ls *LevelSet) Contains(row int) bool {
	lo, hi := 0, len(ls.Points)
	for lo < hi {
		mid := (lo + hi) / 2
		if ls.Points[mid] < row {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(ls.Points) && ls.Points[lo] == row
}

// Intersects reports whether two level sets share at least one point row.
// Both point lists are in ascending order.
func (ls *LevelSet) Intersects(other *LevelSet) bool {
	i, j := 0, 0
	for i < len(ls.Points) && j < len(other.Points) {
		switch {
		case ls.Points[i] < other.Points[j]:
			i++
		case ls.Points[i] > other.Points[j]:
			j++
		default:
			return true
		}
	}
	return false
}
