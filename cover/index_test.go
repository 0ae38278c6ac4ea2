package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexStringForm(t *testing.T) {
	assert.Equal(t, "(1)", Index{1}.String())
	assert.Equal(t, "(1 2 3)", Index{1, 2, 3}.String())
	assert.Equal(t, "(10 -2)", Index{10, -2}.String())
}

func TestParseIndexRoundTrip(t *testing.T) {
	for _, ix := range []Index{{1}, {1, 2}, {5, 5, 5}, {3, 1, 4, 1}} {
		parsed, err := ParseIndex(ix.String())
		require.NoError(t, err)
		assert.Equal(t, ix, parsed)
	}
}

func TestParseIndexRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "1 2", "(1 2", "1 2)", "()", "(a b)", "(1,2)"} {
		_, err := ParseIndex(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestCompareLexicographic(t *testing.T) {
	assert.Equal(t, 0, Compare(Index{1, 2}, Index{1, 2}))
	assert.Equal(t, -1, Compare(Index{1, 2}, Index{1, 3}))
	assert.Equal(t, 1, Compare(Index{2, 1}, Index{1, 9}))
	assert.Equal(t, -1, Compare(Index{1}, Index{1, 1}))
}

func TestCloneIndependent(t *testing.T) {
	a := Index{1, 2}
	b := a.Clone()
	b[0] = 9
	assert.Equal(t, Index{1, 2}, a)
}
