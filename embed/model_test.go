package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(map[string][]float32{
		"calculus":    {1, 0, 0},
		"derivatives": {0.9, 0.1, 0},
		"integrals":   {0.8, 0.2, 0},
		"cooking":     {0, 0, 1},
	})
	require.NoError(t, err)
	return m
}

func TestNewModel(t *testing.T) {
	t.Run("empty mapping", func(t *testing.T) {
		_, err := NewModel(nil)
		assert.Equal(t, ErrNoVectors, err)
	})

	t.Run("inconsistent dimensions", func(t *testing.T) {
		_, err := NewModel(map[string][]float32{
			"a": {1, 0},
			"b": {1, 0, 0},
		})
		assert.Equal(t, ErrDimensionMismatch, err)
	})

	t.Run("vectors normalized", func(t *testing.T) {
		m, err := NewModel(map[string][]float32{"a": {3, 4}})
		require.NoError(t, err)
		v, ok := m.Vector("a")
		require.True(t, ok)
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})
}

func TestModelSimilarNeighbors(t *testing.T) {
	m := newTestModel(t)

	neighbors := m.SimilarNeighbors("calculus", 10)
	require.Len(t, neighbors, 3)

	// Descending similarity, query term excluded
	assert.Equal(t, "derivatives", neighbors[0].Term)
	assert.Equal(t, "integrals", neighbors[1].Term)
	assert.Equal(t, "cooking", neighbors[2].Term)
	for i := 1; i < len(neighbors); i++ {
		assert.LessOrEqual(t, neighbors[i].Score, neighbors[i-1].Score)
	}
}

func TestModelSimilarNeighborsLimit(t *testing.T) {
	m := newTestModel(t)
	assert.Len(t, m.SimilarNeighbors("calculus", 2), 2)
	assert.Empty(t, m.SimilarNeighbors("calculus", 0))
}

func TestModelSimilarNeighborsOutOfVocabulary(t *testing.T) {
	m := newTestModel(t)
	assert.Empty(t, m.SimilarNeighbors("zzyzx", 10))
	assert.False(t, m.Contains("zzyzx"))
}

func TestModelAccessors(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 3, m.Dim())
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, []string{"calculus", "cooking", "derivatives", "integrals"}, m.Terms())
}
