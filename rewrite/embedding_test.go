package rewrite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/widen/embed"
)

type fakeNeighborSource struct {
	neighbors map[string][]embed.Neighbor
	lastTopN  int
}

func (f *fakeNeighborSource) SimilarNeighbors(term string, topN int) []embed.Neighbor {
	f.lastTopN = topN
	ns := f.neighbors[term]
	if len(ns) > topN {
		ns = ns[:topN]
	}
	return ns
}

func TestNewEmbedding(t *testing.T) {
	_, err := NewEmbedding(nil)
	assert.Equal(t, ErrNeighborSourceRequired, err)
}

func TestEmbeddingRewrite(t *testing.T) {
	source := &fakeNeighborSource{neighbors: map[string][]embed.Neighbor{
		"calculus": {
			{Term: "derivatives", Score: 0.91},
			{Term: "integrals", Score: 0.88},
			{Term: "limits", Score: 0.80},
		},
	}}
	rw, err := NewEmbedding(source)
	require.NoError(t, err)

	terms, err := rw.Rewrite(context.Background(), "calculus")
	require.NoError(t, err)
	assert.Equal(t, []string{"derivatives", "integrals", "limits", "calculus"}, terms)
	assert.Equal(t, defaultNeighborCount, source.lastTopN)
}

func TestEmbeddingRewriteOutOfVocabulary(t *testing.T) {
	rw, err := NewEmbedding(&fakeNeighborSource{})
	require.NoError(t, err)

	terms, err := rw.Rewrite(context.Background(), "zzyzx")
	require.NoError(t, err)
	assert.Equal(t, []string{"zzyzx"}, terms)
}

func TestEmbeddingNeighborCount(t *testing.T) {
	source := &fakeNeighborSource{neighbors: map[string][]embed.Neighbor{
		"algebra": {
			{Term: "equations", Score: 0.9},
			{Term: "polynomials", Score: 0.8},
			{Term: "matrices", Score: 0.7},
		},
	}}
	rw, err := NewEmbedding(source, WithNeighborCount(2))
	require.NoError(t, err)

	terms, err := rw.Rewrite(context.Background(), "algebra")
	require.NoError(t, err)
	assert.Equal(t, []string{"equations", "polynomials", "algebra"}, terms)
}
