package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits",
			text: "Machine Learning, for Everyone!",
			want: []string{"machine", "learning", "for", "everyone"},
		},
		{
			name: "keeps phrase joiner",
			text: "machine_learning is fun",
			want: []string{"machine_learning", "is", "fun"},
		},
		{
			name: "keeps internal apostrophes",
			text: "Newton's laws",
			want: []string{"newton's", "laws"},
		},
		{
			name: "strips html leftovers",
			text: "velocity  =  d/t",
			want: []string{"velocity", "d", "t"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize("  ,.; "))
}
