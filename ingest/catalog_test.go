package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
  "courses": [
    {
      "slug": "cs101",
      "title": "Intro to Computer Science",
      "subtitle": "Programming from zero",
      "expected_learning": "Variables, loops, functions",
      "syllabus": "Week 1: basics",
      "summary": "A first programming course",
      "short_summary": "Learn to program"
    },
    {
      "title": "Untitled but has a title",
      "summary": "No slug on this one"
    },
    {
      "subtitle": "neither slug nor title"
    }
  ]
}`

func TestLoadCatalog(t *testing.T) {
	docs, report, err := LoadCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Loaded)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 3, report.Failures[0].Record)

	require.Len(t, docs, 2)
	assert.Equal(t, "cs101", docs[0]["slug"])
	assert.Equal(t, "Intro to Computer Science", docs[0]["title"])
	assert.Equal(t, "Week 1: basics", docs[0]["syllabus"])

	// Slugless record gets a content-derived identifier
	assert.NotEmpty(t, docs[1]["slug"])
}

func TestLoadCatalogMalformedJSON(t *testing.T) {
	_, _, err := LoadCatalog(strings.NewReader(`{"courses": [`))
	assert.Error(t, err)
}

func TestLoadCatalogEmpty(t *testing.T) {
	docs, report, err := LoadCatalog(strings.NewReader(`{"courses": []}`))
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.True(t, report.Clean())
}
