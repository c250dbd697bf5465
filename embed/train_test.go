package embed

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trainingCorpus builds sentences with two distinct clusters so related
// terms end up near each other.
func trainingCorpus() [][]string {
	mathWords := []string{"calculus", "derivatives", "integrals", "limits"}
	foodWords := []string{"cooking", "baking", "recipes", "flavor"}

	var corpus [][]string
	for i := 0; i < 200; i++ {
		corpus = append(corpus,
			[]string{mathWords[i%4], mathWords[(i+1)%4], mathWords[(i+2)%4]},
			[]string{foodWords[i%4], foodWords[(i+1)%4], foodWords[(i+2)%4]},
		)
	}
	return corpus
}

func TestTrain(t *testing.T) {
	cfg := TrainConfig{
		Dim:      16,
		Epochs:   10,
		MinCount: 2,
		Workers:  2,
		Seed:     42,
	}
	model, err := Train(context.Background(), trainingCorpus(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 16, model.Dim())
	assert.Equal(t, 8, model.Len())
	assert.True(t, model.Contains("calculus"))

	// Words from the same cluster should outrank words from the other
	neighbors := model.SimilarNeighbors("calculus", 3)
	require.Len(t, neighbors, 3)
	for _, n := range neighbors {
		assert.Contains(t, []string{"derivatives", "integrals", "limits"}, n.Term,
			"unexpected nearest neighbor %q", n.Term)
	}
}

func TestTrainEmptyCorpus(t *testing.T) {
	_, err := Train(context.Background(), nil, TrainConfig{})
	assert.Equal(t, ErrEmptyCorpus, err)
}

func TestTrainEmptyVocabulary(t *testing.T) {
	corpus := [][]string{{"once"}, {"twice"}}
	_, err := Train(context.Background(), corpus, TrainConfig{MinCount: 10})
	assert.Equal(t, ErrEmptyVocabulary, err)
}

func TestTrainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Train(ctx, trainingCorpus(), TrainConfig{MinCount: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrainWithPhrases(t *testing.T) {
	corpus := make([][]string, 0, 60)
	for i := 0; i < 60; i++ {
		corpus = append(corpus, []string{
			"machine", "learning", fmt.Sprintf("topic%d", i%30), "course",
		})
	}

	cfg := TrainConfig{
		Dim:          8,
		Epochs:       2,
		MinCount:     2,
		Phrases:      true,
		PhraseConfig: PhraseConfig{MinCount: 5, Threshold: 0.4},
		Seed:         7,
	}
	model, err := Train(context.Background(), corpus, cfg)
	require.NoError(t, err)

	assert.True(t, model.Contains("machine_learning"))
	assert.False(t, model.Contains("machine"))
}
