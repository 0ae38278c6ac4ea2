package cover

import (
	"errors"
	"fmt"
)

// Errors are split along the failure classes the strategies report: refusing
// a bad parameter at assignment time, constructing before configuration,
// querying before construction, structural defects found by Validate, and
// dimensionality mismatches between inputs.
var (
	// ErrInvalidParam is returned by setters refusing a parameter value.
	ErrInvalidParam = errors.New("cover: invalid parameter")

	// ErrNotConfigured is returned when Construct runs before required
	// parameters have been set.
	ErrNotConfigured = errors.New("cover: required parameters not set")

	// ErrNotConstructed is returned by queries that need a constructed cover.
	ErrNotConstructed = errors.New("cover: cover not constructed")

	// ErrMalformed is returned by Validate for inconsistent covers.
	ErrMalformed = errors.New("cover: malformed cover")

	// ErrDimension is returned on dimensionality mismatches between inputs.
	ErrDimension = errors.New("cover: dimension mismatch")

	// ErrUnknownIndex is returned when a key is not part of the index set.
	ErrUnknownIndex = errors.New("cover: unknown level-set index")
)

// Param is one strategy parameter in the uniform introspectable form the
// external registry lists.
type Param struct {
	Name  string
	Value any
}

// Cover is the capability contract of a covering strategy. A strategy turns
// the filter space into an ordered index set and one level set per key; new
// strategies implement this interface rather than extending existing ones.
//
// Construct mutates the receiving cover and must not run concurrently with
// any other call on the same instance. The read-only queries may run
// concurrently with each other.
type Cover interface {
	// Typename identifies the strategy for the external registry.
	Typename() string

	// Params lists the current strategy parameters.
	Params() []Param

	// Construct (re)computes the index set and level sets from the current
	// parameters, fully replacing any previous result. Calling it before the
	// required parameters are set is a precondition failure
	// (ErrNotConfigured).
	Construct() error

	// ConstructAt computes the point-index set of the single level set keyed
	// by idx without mutating the cover, recomputing it if not cached.
	ConstructAt(idx Index) ([]int, error)

	// IndexSet returns the ordered level-set keys.
	IndexSet() []Index

	// LevelSet returns the constructed level set keyed by idx.
	LevelSet(idx Index) (*LevelSet, error)

	// LevelSets returns all level sets in index-set order.
	LevelSets() []*LevelSet

	// Neighborhood returns the candidate (k+1)-fold key combinations to test
	// for the nerve. Strategies may prune the default all-combinations
	// answer, but must never drop a combination whose level sets truly
	// intersect.
	Neighborhood(k int) ([][]Index, error)

	// Validate returns nil iff the index set and level sets are mutually
	// consistent, non-empty, and cover every point of the filter space.
	Validate() error
}

// Check verifies the structural invariants shared by every strategy: index
// set and level sets non-empty and of equal length, keys unique and matching
// positionally, and the union of all level sets covering all n points. It
// reports the first defect found, wrapped around ErrMalformed.
func Check(n int, indexSet []Index, sets []*LevelSet) error {
	if len(indexSet) == 0 || len(sets) == 0 {
		return fmt.Errorf("%w: empty cover", ErrMalformed)
	}
	if len(indexSet) != len(sets) {
		return fmt.Errorf("%w: %d keys but %d level sets", ErrMalformed, len(indexSet), len(sets))
	}
	seen := make(map[string]struct{}, len(indexSet))
	covered := make([]bool, n)
	for i, idx := range indexSet {
		key := idx.String()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate key %s", ErrMalformed, key)
		}
		seen[key] = struct{}{}
		ls := sets[i]
		if ls == nil {
			return fmt.Errorf("%w: nil level set at key %s", ErrMalformed, key)
		}
		if !ls.Index.Equal(idx) {
			return fmt.Errorf("%w: level set at position %d keyed %s, want %s", ErrMalformed, i, ls.Index, key)
		}
		for _, p := range ls.Points {
			if p < 0 || p >= n {
				return fmt.Errorf("%w: level set %s references point %d outside 0..%d", ErrMalformed, key, p, n-1)
			}
			covered[p] = true
		}
	}
	for p, ok := range covered {
		if !ok {
			return fmt.Errorf("%w: point %d not covered by any level set", ErrMalformed, p)
		}
	}
	return nil
}
