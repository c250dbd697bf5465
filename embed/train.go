package embed

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const (
	defaultDim          = 100
	defaultWindow       = 5
	defaultEpochs       = 5
	defaultMinCount     = 5
	defaultNegative     = 5
	defaultLearningRate = 0.025

	// minLearningRate floors the per-epoch learning rate decay.
	minLearningRate = 0.0001

	// unigramPower flattens the sampling distribution for negatives.
	unigramPower = 0.75

	// maxExp clamps the sigmoid argument.
	maxExp = 6.0
)

// TrainConfig controls skip-gram training. Zero values take defaults.
type TrainConfig struct {
	Dim          int     // vector dimension, default 100
	Window       int     // max context window radius, default 5
	Epochs       int     // passes over the corpus, default 5
	MinCount     int     // minimum term frequency, default 5
	Negative     int     // negative samples per context pair, default 5
	LearningRate float64 // starting rate, default 0.025
	Workers      int     // default runtime.NumCPU() / 2, minimum 1
	Seed         uint64  // RNG seed, 0 means 1

	// Phrases enables collocation detection before training: frequent
	// bigrams are merged into single terms.
	Phrases      bool
	PhraseConfig PhraseConfig

	Logger *slog.Logger
}

func (c TrainConfig) withDefaults() TrainConfig {
	if c.Dim <= 0 {
		c.Dim = defaultDim
	}
	if c.Window <= 0 {
		c.Window = defaultWindow
	}
	if c.Epochs <= 0 {
		c.Epochs = defaultEpochs
	}
	if c.MinCount <= 0 {
		c.MinCount = defaultMinCount
	}
	if c.Negative <= 0 {
		c.Negative = defaultNegative
	}
	if c.LearningRate <= 0 {
		c.LearningRate = defaultLearningRate
	}
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU() / 2
		if c.Workers < 1 {
			c.Workers = 1
		}
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// vocab is the indexed vocabulary of a training corpus.
type vocab struct {
	terms  []string
	counts []int
	index  map[string]int
}

func buildVocab(sentences [][]string, minCount int) *vocab {
	counts := make(map[string]int)
	for _, sentence := range sentences {
		for _, word := range sentence {
			counts[word]++
		}
	}

	v := &vocab{index: make(map[string]int)}
	for word, count := range counts {
		if count >= minCount {
			v.terms = append(v.terms, word)
		}
	}
	// Deterministic term order regardless of map iteration
	slices.Sort(v.terms)
	v.counts = make([]int, len(v.terms))
	for i, term := range v.terms {
		v.counts[i] = counts[term]
		v.index[term] = i
	}
	return v
}

// sampler draws negative samples from the unigram distribution raised to
// the 3/4 power.
type sampler struct {
	cumulative []float64
}

func newSampler(v *vocab) *sampler {
	s := &sampler{cumulative: make([]float64, len(v.counts))}
	var total float64
	for i, count := range v.counts {
		total += math.Pow(float64(count), unigramPower)
		s.cumulative[i] = total
	}
	return s
}

func (s *sampler) draw(rng *rand.Rand) int {
	target := rng.Float64() * s.cumulative[len(s.cumulative)-1]
	lo, hi := 0, len(s.cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if s.cumulative[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func sigmoid(x float64) float64 {
	if x > maxExp {
		return 1
	}
	if x < -maxExp {
		return 0
	}
	return 1 / (1 + math.Exp(-x))
}

// Train learns term vectors from a corpus of tokenized sentences using
// skip-gram with negative sampling. Sentence shards run concurrently on a
// worker pool; workers update shared weights without locking, trading exact
// reproducibility for throughput. Cancellation is honored between epochs.
func Train(ctx context.Context, sentences [][]string, cfg TrainConfig) (*Model, error) {
	cfg = cfg.withDefaults()
	if len(sentences) == 0 {
		return nil, ErrEmptyCorpus
	}

	if cfg.Phrases {
		table := LearnPhrases(sentences, cfg.PhraseConfig)
		cfg.Logger.Info("detected phrases", "count", table.Len())
		sentences = table.ApplyAll(sentences)
	}

	v := buildVocab(sentences, cfg.MinCount)
	if len(v.terms) == 0 {
		return nil, ErrEmptyVocabulary
	}
	cfg.Logger.Info("vocabulary built",
		"terms", len(v.terms), "sentences", len(sentences))

	// syn0 holds the input vectors that become the model; syn1 holds the
	// output weights used only during training.
	syn0 := make([][]float32, len(v.terms))
	syn1 := make([][]float32, len(v.terms))
	initRng := rand.New(rand.NewPCG(cfg.Seed, 0))
	for i := range syn0 {
		syn0[i] = make([]float32, cfg.Dim)
		syn1[i] = make([]float32, cfg.Dim)
		for d := range syn0[i] {
			syn0[i][d] = (initRng.Float32() - 0.5) / float32(cfg.Dim)
		}
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	negSampler := newSampler(v)
	shards := shardSentences(sentences, cfg.Workers)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lr := cfg.LearningRate * (1 - float64(epoch)/float64(cfg.Epochs))
		if lr < minLearningRate {
			lr = minLearningRate
		}

		var wg sync.WaitGroup
		for shard, batch := range shards {
			wg.Add(1)
			w := &worker{
				vocab:    v,
				sampler:  negSampler,
				syn0:     syn0,
				syn1:     syn1,
				window:   cfg.Window,
				negative: cfg.Negative,
				lr:       lr,
				rng: rand.New(rand.NewPCG(
					cfg.Seed, uint64(epoch)<<32|uint64(shard)+1)),
			}
			if err := pool.Submit(func() {
				defer wg.Done()
				w.train(batch)
			}); err != nil {
				wg.Done()
				wg.Wait()
				return nil, err
			}
		}
		wg.Wait()
		cfg.Logger.Debug("epoch complete", "epoch", epoch+1, "lr", lr)
	}

	vectors := make(map[string][]float32, len(v.terms))
	for i, term := range v.terms {
		vectors[term] = syn0[i]
	}
	return NewModel(vectors)
}

func shardSentences(sentences [][]string, n int) [][][]string {
	if n > len(sentences) {
		n = len(sentences)
	}
	shards := make([][][]string, n)
	for i, sentence := range sentences {
		shards[i%n] = append(shards[i%n], sentence)
	}
	return shards
}

type worker struct {
	vocab    *vocab
	sampler  *sampler
	syn0     [][]float32
	syn1     [][]float32
	window   int
	negative int
	lr       float64
	rng      *rand.Rand
}

func (w *worker) train(sentences [][]string) {
	ids := make([]int, 0, 64)
	for _, sentence := range sentences {
		ids = ids[:0]
		for _, word := range sentence {
			if id, ok := w.vocab.index[word]; ok {
				ids = append(ids, id)
			}
		}
		w.trainSentence(ids)
	}
}

func (w *worker) trainSentence(ids []int) {
	for pos, center := range ids {
		// Reduced window, as in the reference word2vec implementation
		b := 1 + w.rng.IntN(w.window)
		for off := -b; off <= b; off++ {
			ctxPos := pos + off
			if off == 0 || ctxPos < 0 || ctxPos >= len(ids) {
				continue
			}
			w.trainPair(center, ids[ctxPos])
		}
	}
}

// trainPair runs one positive update and w.negative sampled negative
// updates for a (center, context) pair.
func (w *worker) trainPair(center, context int) {
	input := w.syn0[center]
	grad := make([]float32, len(input))

	w.updateOutput(input, grad, w.syn1[context], 1)
	for k := 0; k < w.negative; k++ {
		target := w.sampler.draw(w.rng)
		if target == context {
			continue
		}
		w.updateOutput(input, grad, w.syn1[target], 0)
	}

	for d := range input {
		input[d] += grad[d]
	}
}

func (w *worker) updateOutput(input, grad, output []float32, label float64) {
	var dot float64
	for d := range input {
		dot += float64(input[d]) * float64(output[d])
	}
	g := float32((label - sigmoid(dot)) * w.lr)
	for d := range input {
		grad[d] += g * output[d]
		output[d] += g * input[d]
	}
}
