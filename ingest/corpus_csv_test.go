package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCorpus = `course_id,display_name,contents,category
HarvardX/PH207x,Health Stats,"<p>Sampling &amp; inference</p>",problem
HarvardX/PH207x,Lecture 1,"<video>intro</video>",video
HarvardX/CS50x,Homepage,"<html><body>lots of css</body></html>",html
,Orphan Row,"no id here",problem
`

func TestLoadCorpus(t *testing.T) {
	docs, report, err := LoadCorpus(strings.NewReader(sampleCorpus))
	require.NoError(t, err)

	// html category skipped silently, missing course_id reported
	assert.Equal(t, 2, report.Loaded)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 4, report.Failures[0].Record)

	require.Len(t, docs, 2)
	assert.Equal(t, "HarvardX/PH207x", docs[0]["course_id"])
	assert.Equal(t, "Sampling & inference", docs[0]["contents"])
	assert.Equal(t, "intro", docs[1]["contents"])
}

func TestLoadCorpusMissingColumn(t *testing.T) {
	_, _, err := LoadCorpus(strings.NewReader("course_id,display_name\nx,y\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadCorpusEmptyInput(t *testing.T) {
	_, _, err := LoadCorpus(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "just words", "just words"},
		{"tags removed", "<p>hello <b>world</b></p>", "hello world"},
		{"entities decoded", "rock &amp; roll", "rock & roll"},
		{"whitespace collapsed", "a\n\n  b\t c", "a b c"},
		{"unclosed tag swallows rest", "before <p attr=", "before"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripHTML(tt.in))
		})
	}
}
