package ball

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/tdakit/mapper/cover"
	"github.com/tdakit/mapper/disjoint"
	"github.com/tdakit/mapper/internal/logging"
	"github.com/tdakit/mapper/internal/neighbor"
)

// Typename is the registry identifier of the ball cover.
const Typename = "ball"

// Option configures a ball cover at construction time.
type Option func(*Cover)

// WithLogger injects a logger for construction diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *Cover) { c.log = log }
}

// WithTreeBase overrides the expansion base of the underlying cover tree.
func WithTreeBase(base float32) Option {
	return func(c *Cover) { c.base = base }
}

// Cover groups the filter points into the connected components of the
// "within epsilon" relation. Level-set keys are component ordinals in
// first-seen point order.
type Cover struct {
	space   *cover.FilterSpace
	epsilon float64
	epsSet  bool

	base float32
	log  *zap.Logger

	indexSet []cover.Index
	sets     []*cover.LevelSet
}

// New creates a ball cover over space with the given radius. A negative
// epsilon fails immediately; use SetEpsilon to re-parameterize later.
func New(space *cover.FilterSpace, epsilon float64, opts ...Option) (*Cover, error) {
	if space == nil {
		return nil, fmt.Errorf("%w: nil filter space", cover.ErrInvalidParam)
	}
	c := &Cover{space: space, base: 1.3, log: logging.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.SetEpsilon(epsilon); err != nil {
		return nil, err
	}
	return c, nil
}

// Typename identifies the strategy for the external registry.
func (c *Cover) Typename() string { return Typename }

// Params lists the strategy parameters for the external registry.
func (c *Cover) Params() []cover.Param {
	return []cover.Param{{Name: "epsilon", Value: c.epsilon}}
}

// SetEpsilon assigns the neighborhood radius, which must be non-negative.
func (c *Cover) SetEpsilon(epsilon float64) error {
	if epsilon < 0 {
		return fmt.Errorf("%w: epsilon %v, want >= 0", cover.ErrInvalidParam, epsilon)
	}
	c.epsilon = epsilon
	c.epsSet = true
	return nil
}

// components runs the radius queries and the union-find pass, returning the
// per-point component labels in first-seen order.
func (c *Cover) components() ([]int, error) {
	points := neighbor.PointsFromMatrix(c.space.Matrix())
	tree := neighbor.Build(points, c.base, neighbor.DistanceFunctionEuclidean)
	uf, err := disjoint.New(len(points))
	if err != nil {
		return nil, err
	}
	for i := range points {
		rows := tree.InRadius(&points[i], float32(c.epsilon))
		if err := uf.UnionAll(rows); err != nil {
			return nil, err
		}
	}
	return uf.ConnectedComponents(), nil
}

// groupByLabel turns component labels into level sets keyed by the 1-based
// component ordinal. Labels are first-seen ordinals, so the index set comes
// out in ascending order with point lists ascending too.
func groupByLabel(labels []int) ([]cover.Index, []*cover.LevelSet) {
	count := 0
	for _, l := range labels {
		if l+1 > count {
			count = l + 1
		}
	}
	indexSet := make([]cover.Index, count)
	sets := make([]*cover.LevelSet, count)
	for i := 0; i < count; i++ {
		indexSet[i] = cover.Index{i + 1}
		sets[i] = &cover.LevelSet{Index: indexSet[i]}
	}
	for row, l := range labels {
		sets[l].Points = append(sets[l].Points, row)
	}
	return indexSet, sets
}

// Construct computes the connected components and stores them as level sets,
// replacing any previous result.
func (c *Cover) Construct() error {
	if !c.epsSet {
		return cover.ErrNotConfigured
	}
	labels, err := c.components()
	if err != nil {
		return err
	}
	c.indexSet, c.sets = groupByLabel(labels)
	c.log.Debug("constructed ball cover",
		zap.Int("points", c.space.Len()),
		zap.Int("level_sets", len(c.indexSet)),
		zap.Float64("epsilon", c.epsilon))
	return nil
}

// ConstructAt returns the point set of the level set keyed by idx. The
// component structure is global, so an unconstructed cover recomputes it
// without storing; a constructed cover answers from the cached level sets.
func (c *Cover) ConstructAt(idx cover.Index) ([]int, error) {
	if c.sets != nil {
		ls, err := c.LevelSet(idx)
		if err != nil {
			return nil, err
		}
		return ls.Points, nil
	}
	if !c.epsSet {
		return nil, cover.ErrNotConfigured
	}
	labels, err := c.components()
	if err != nil {
		return nil, err
	}
	indexSet, sets := groupByLabel(labels)
	pos := sort.Search(len(indexSet), func(i int) bool {
		return cover.Compare(indexSet[i], idx) >= 0
	})
	if pos == len(indexSet) || !indexSet[pos].Equal(idx) {
		return nil, fmt.Errorf("%w: key %s", cover.ErrUnknownIndex, idx)
	}
	return sets[pos].Points, nil
}

// IndexSet returns the ordered component keys.
func (c *Cover) IndexSet() []cover.Index { return c.indexSet }

// LevelSets returns all level sets in index-set order.
func (c *Cover) LevelSets() []*cover.LevelSet { return c.sets }

// LevelSet returns the level set keyed by idx.
func (c *Cover) LevelSet(idx cover.Index) (*cover.LevelSet, error) {
	if c.sets == nil {
		return nil, cover.ErrNotConstructed
	}
	if len(idx) != 1 || idx[0] < 1 || idx[0] > len(c.sets) {
		return nil, fmt.Errorf("%w: key %s", cover.ErrUnknownIndex, idx)
	}
	return c.sets[idx[0]-1], nil
}

// Neighborhood returns the default all-combinations candidate set. The
// components are pairwise disjoint, so every candidate is later rejected by
// the intersection test.
func (c *Cover) Neighborhood(k int) ([][]cover.Index, error) {
	if c.sets == nil {
		return nil, cover.ErrNotConstructed
	}
	return cover.Combinations(c.indexSet, k)
}

// Validate checks the structural invariants of the constructed cover.
func (c *Cover) Validate() error {
	if c.sets == nil {
		return cover.ErrNotConstructed
	}
	return cover.Check(c.space.Len(), c.indexSet, c.sets)
}

var _ cover.Cover = (*Cover)(nil)
