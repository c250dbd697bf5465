package rewrite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/widen/core"
	"github.com/poiesic/widen/index/sqlite"
	"github.com/poiesic/widen/search"
)

type fakeRewriter struct {
	terms []string
	err   error
}

func (f *fakeRewriter) Rewrite(_ context.Context, term string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append(f.terms, term), nil
}

type recordingMonitor struct {
	started  string
	rewrites []string
	degraded bool
	searches []string
	finished []core.Hit
}

func (m *recordingMonitor) Start(term string)                { m.started = term }
func (m *recordingMonitor) AfterRewrite(terms []string)      { m.rewrites = terms }
func (m *recordingMonitor) RewriteDegraded(_ string, _ error) { m.degraded = true }
func (m *recordingMonitor) AfterTermSearch(term string, _ []core.Hit) {
	m.searches = append(m.searches, term)
}
func (m *recordingMonitor) Finish(results []core.Hit) { m.finished = results }

func newTestEngine(t *testing.T) *search.Engine {
	t.Helper()
	schema := core.NewSchema(
		core.Field{Name: "slug", Kind: core.KindIdentifier},
		core.Field{Name: "title", Kind: core.KindStoredText},
	)
	store, err := sqlite.Create(schema, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	session, err := store.BeginWrite()
	require.NoError(t, err)
	docs := []core.Document{
		{"slug": "a", "title": "introductory mechanics"},
		{"slug": "b", "title": "mechanics and optics together"},
		{"slug": "c", "title": "waves and optics"},
	}
	for _, doc := range docs {
		require.NoError(t, session.Add(doc))
	}
	require.NoError(t, session.Commit())

	engine, err := search.NewEngine(store)
	require.NoError(t, err)
	return engine
}

func slugs(hits []core.Hit) []string {
	out := make([]string, len(hits))
	for i, hit := range hits {
		out[i] = hit["slug"]
	}
	return out
}

func TestNewExpander(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("nil rewriter", func(t *testing.T) {
		_, err := NewExpander(nil, []*search.Engine{engine})
		assert.Equal(t, ErrRewriterRequired, err)
	})

	t.Run("no engines", func(t *testing.T) {
		_, err := NewExpander(Control{}, nil)
		assert.Equal(t, ErrEngineRequired, err)
	})
}

func TestExpanderMergeKeepsFirstOccurrence(t *testing.T) {
	engine := newTestEngine(t)

	// "mechanics" matches a and b, "optics" matches b and c; b must appear
	// once, at the position of its first occurrence.
	rw := &fakeRewriter{terms: []string{"mechanics"}}
	x, err := NewExpander(rw, []*search.Engine{engine})
	require.NoError(t, err)

	hits, err := x.Search(context.Background(), "optics")
	require.NoError(t, err)

	got := slugs(hits)
	require.Len(t, got, 3)
	assert.ElementsMatch(t, []string{"a", "b"}, got[:2])
	assert.Equal(t, "c", got[2])
}

func TestExpanderDegradesOnRewriteFailure(t *testing.T) {
	engine := newTestEngine(t)
	monitor := &recordingMonitor{}

	rw := &fakeRewriter{err: errors.New("category service unavailable")}
	x, err := NewExpander(rw, []*search.Engine{engine}, WithMonitor(monitor))
	require.NoError(t, err)

	hits, err := x.Search(context.Background(), "mechanics")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, slugs(hits))
	assert.True(t, monitor.degraded)
	assert.Equal(t, []string{"mechanics"}, monitor.rewrites)
}

func TestExpanderControlMatchesPlainSearch(t *testing.T) {
	engine := newTestEngine(t)

	x, err := NewExpander(Control{}, []*search.Engine{engine})
	require.NoError(t, err)

	ctx := context.Background()
	expanded, err := x.Search(ctx, "waves")
	require.NoError(t, err)
	plain, err := engine.Search(ctx, "waves")
	require.NoError(t, err)

	assert.Equal(t, plain, expanded)
}

func TestExpanderMonitorSeesTermOrder(t *testing.T) {
	engine := newTestEngine(t)
	monitor := &recordingMonitor{}

	rw := &fakeRewriter{terms: []string{"mechanics", "optics"}}
	x, err := NewExpander(rw, []*search.Engine{engine}, WithMonitor(monitor))
	require.NoError(t, err)

	_, err = x.Search(context.Background(), "waves")
	require.NoError(t, err)

	assert.Equal(t, "waves", monitor.started)
	assert.Equal(t, []string{"mechanics", "optics", "waves"}, monitor.searches)
	assert.NotNil(t, monitor.finished)
}
