package badgerstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/widen/embed"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadModel(t *testing.T) {
	store := newTestStore(t)

	model, err := embed.NewModel(map[string][]float32{
		"gravity":  {1, 0, 0},
		"orbit":    {0.9, 0.1, 0},
		"molecule": {0, 1, 0},
	})
	require.NoError(t, err)
	require.NoError(t, store.SaveModel(model))

	loaded, err := store.LoadModel()
	require.NoError(t, err)

	assert.Equal(t, model.Dim(), loaded.Dim())
	assert.Equal(t, model.Terms(), loaded.Terms())
	assert.Equal(t,
		model.SimilarNeighbors("gravity", 2),
		loaded.SimilarNeighbors("gravity", 2))
}

func TestLoadModelEmpty(t *testing.T) {
	store := newTestStore(t)
	_, err := store.LoadModel()
	assert.ErrorIs(t, err, ErrNoModel)
}

func TestSaveModelNil(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, ErrModelRequired, store.SaveModel(nil))
}

func TestSaveModelReplacesPrevious(t *testing.T) {
	store := newTestStore(t)

	first, err := embed.NewModel(map[string][]float32{
		"alpha": {1, 0},
		"beta":  {0, 1},
	})
	require.NoError(t, err)
	require.NoError(t, store.SaveModel(first))

	second, err := embed.NewModel(map[string][]float32{"gamma": {1, 1}})
	require.NoError(t, err)
	require.NoError(t, store.SaveModel(second))

	loaded, err := store.LoadModel()
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma"}, loaded.Terms())
}

func TestOpenRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	_, err := Open(path, false)
	assert.Error(t, err)
}
