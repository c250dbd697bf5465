package embed

import "strings"

const (
	defaultPhraseMinCount  = 5
	defaultPhraseThreshold = 10.0
)

// PhraseConfig controls collocation detection.
type PhraseConfig struct {
	// MinCount is the minimum number of times a bigram must occur to be
	// considered. Default 5.
	MinCount int

	// Threshold is the minimum collocation score for a bigram to become a
	// phrase. Higher means fewer phrases. Default 10.
	Threshold float64
}

func (c PhraseConfig) withDefaults() PhraseConfig {
	if c.MinCount <= 0 {
		c.MinCount = defaultPhraseMinCount
	}
	if c.Threshold <= 0 {
		c.Threshold = defaultPhraseThreshold
	}
	return c
}

// PhraseTable holds the bigrams of a corpus that occur together often enough
// to be treated as single terms.
type PhraseTable struct {
	bigrams map[string]bool
}

// LearnPhrases scans a corpus and scores every adjacent word pair:
//
//	score = (count(ab) - minCount) / (count(a) * count(b)) * vocabSize
//
// Pairs scoring above the threshold are recorded as phrases.
func LearnPhrases(sentences [][]string, cfg PhraseConfig) *PhraseTable {
	cfg = cfg.withDefaults()

	words := make(map[string]int)
	pairs := make(map[string]int)
	for _, sentence := range sentences {
		for i, word := range sentence {
			words[word]++
			if i > 0 {
				pairs[sentence[i-1]+phraseJoiner+word]++
			}
		}
	}

	table := &PhraseTable{bigrams: make(map[string]bool)}
	vocabSize := float64(len(words))
	for pair, count := range pairs {
		if count < cfg.MinCount {
			continue
		}
		a, b, _ := strings.Cut(pair, phraseJoiner)
		score := float64(count-cfg.MinCount) / float64(words[a]*words[b]) * vocabSize
		if score > cfg.Threshold {
			table.bigrams[pair] = true
		}
	}
	return table
}

// Len returns the number of detected phrases.
func (t *PhraseTable) Len() int {
	return len(t.bigrams)
}

// Apply rewrites a sentence, joining each detected bigram into a single
// token. Detection is greedy left to right; a word consumed by one phrase
// cannot start another.
func (t *PhraseTable) Apply(sentence []string) []string {
	if len(t.bigrams) == 0 {
		return sentence
	}
	out := make([]string, 0, len(sentence))
	for i := 0; i < len(sentence); i++ {
		if i+1 < len(sentence) {
			joined := sentence[i] + phraseJoiner + sentence[i+1]
			if t.bigrams[joined] {
				out = append(out, joined)
				i++
				continue
			}
		}
		out = append(out, sentence[i])
	}
	return out
}

// ApplyAll rewrites every sentence in a corpus.
func (t *PhraseTable) ApplyAll(sentences [][]string) [][]string {
	out := make([][]string, len(sentences))
	for i, sentence := range sentences {
		out[i] = t.Apply(sentence)
	}
	return out
}
