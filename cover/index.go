package cover

import (
	"fmt"
	"strconv"
	"strings"
)

// Index is the canonical structured key of a level set: the 1-based
// multi-index of a grid cell for interval covers, or a single component label
// for the ball cover. Internal logic always works with the structured form;
// the "(i1 i2 … id)" text is derived only at the serialization boundary and
// is never re-parsed internally.
type Index []int

// String renders the key in its external textual form, e.g. "(1 2 3)".
func (ix Index) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range ix {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(')')
	return b.String()
}

// ParseIndex reverses String: it strips the parentheses, splits on spaces,
// and parses the integer components.
func ParseIndex(s string) (Index, error) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, fmt.Errorf("cover: index %q not of the form \"(i1 i2 … id)\"", s)
	}
	fields := strings.Fields(s[1 : len(s)-1])
	if len(fields) == 0 {
		return nil, fmt.Errorf("cover: index %q has no components", s)
	}
	out := make(Index, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("cover: index %q component %q: %v", s, f, err)
		}
		out[i] = v
	}
	return out, nil
}

// Equal reports whether two keys are identical.
func (ix Index) Equal(other Index) bool {
	if len(ix) != len(other) {
		return false
	}
	for i := range ix {
		if ix[i] != other[i] {
			return false
		}
	}
	return true
}

// Compare orders keys lexicographically, giving the total deterministic
// ordering the index set is listed in.
func Compare(a, b Index) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Clone returns an independent copy of the key.
func (ix Index) Clone() Index {
	out := make(Index, len(ix))
	copy(out, ix)
	return out
}
