package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadListings(t *testing.T) {
	input := "course_id,name\nedx/cs50,CS50\nedx/6002x,Circuits and Electronics\n"
	docs, report, err := LoadListings(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, report.Clean())
	require.Len(t, docs, 2)
	assert.Equal(t, "edx/cs50", docs[0]["course_id"])
	assert.Equal(t, "CS50", docs[0]["name"])
}

func TestLoadListingsReportsBadRows(t *testing.T) {
	input := "course_id,name\n,Nameless\nedx/ok,Fine\n"
	docs, report, err := LoadListings(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Loaded)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 1, report.Failures[0].Record)
	require.Len(t, docs, 1)
	assert.Equal(t, "edx/ok", docs[0]["course_id"])
}
