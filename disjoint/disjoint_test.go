package disjoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSingletons(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []int{0, 1, 2, 3}, s.ConnectedComponents())
}

func TestNewNegative(t *testing.T) {
	_, err := New(-1)
	require.Error(t, err)
}

func TestUnionTransitive(t *testing.T) {
	s, err := New(6)
	require.NoError(t, err)
	s.Union(0, 1)
	s.Union(1, 2)
	s.Union(4, 5)

	assert.True(t, s.Connected(0, 2))
	assert.True(t, s.Connected(4, 5))
	assert.False(t, s.Connected(2, 4))
	assert.Equal(t, []int{0, 0, 0, 1, 2, 2}, s.ConnectedComponents())
}

func TestUnionAll(t *testing.T) {
	s, err := New(5)
	require.NoError(t, err)
	require.NoError(t, s.UnionAll([]int{3, 0, 4}))

	assert.True(t, s.Connected(3, 0))
	assert.True(t, s.Connected(3, 4))
	assert.False(t, s.Connected(3, 1))
}

func TestUnionAllEmpty(t *testing.T) {
	s, err := New(3)
	require.NoError(t, err)
	require.Error(t, s.UnionAll(nil))
}

func TestUnionAllOrderIndependent(t *testing.T) {
	a, err := New(6)
	require.NoError(t, err)
	b, err := New(6)
	require.NoError(t, err)

	require.NoError(t, a.UnionAll([]int{1, 2, 5}))
	require.NoError(t, a.UnionAll([]int{0, 3}))
	require.NoError(t, b.UnionAll([]int{5, 1}))
	require.NoError(t, b.UnionAll([]int{2, 5}))
	require.NoError(t, b.UnionAll([]int{3, 0}))

	assert.Equal(t, a.ConnectedComponents(), b.ConnectedComponents())
}

func TestFindCompressesPaths(t *testing.T) {
	s, err := New(1000)
	require.NoError(t, err)
	for i := 1; i < 1000; i++ {
		s.Union(i-1, i)
	}
	root := s.Find(999)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, root, s.Find(i))
	}
	labels := s.ConnectedComponents()
	for _, l := range labels {
		assert.Equal(t, 0, l)
	}
}
