package cover

import "fmt"

// Combinations is the default neighborhood selector: all C(m, k+1)
// combinations of the index-set keys, in lexicographic position order. It is
// the correct (never-pruning) candidate set for any strategy, and the
// fallback for orders a strategy does not special-case.
func Combinations(indexSet []Index, k int) ([][]Index, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: neighborhood order %d, want >= 1", ErrInvalidParam, k)
	}
	size := k + 1
	m := len(indexSet)
	if size > m {
		return nil, nil
	}
	var out [][]Index
	comb := make([]int, size)
	for i := range comb {
		comb[i] = i
	}
	for {
		tuple := make([]Index, size)
		for i, pos := range comb {
			tuple[i] = indexSet[pos]
		}
		out = append(out, tuple)

		// Advance to the next combination.
		i := size - 1
		for i >= 0 && comb[i] == m-size+i {
			i--
		}
		if i < 0 {
			return out, nil
		}
		comb[i]++
		for j := i + 1; j < size; j++ {
			comb[j] = comb[j-1] + 1
		}
	}
}
