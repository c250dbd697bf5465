package rewrite

import (
	"context"
	"log/slog"

	"github.com/poiesic/widen/embed"
)

const defaultNeighborCount = 10

// NeighborSource performs nearest-neighbor lookup in an embedding
// vocabulary. Implemented by embed.Model.
type NeighborSource interface {
	SimilarNeighbors(term string, topN int) []embed.Neighbor
}

// Embedding expands a term to its nearest neighbors in a trained vector
// space, ranked by descending cosine similarity.
type Embedding struct {
	source NeighborSource
	topN   int
	logger *slog.Logger
}

var _ Rewriter = (*Embedding)(nil)

// EmbeddingOption configures an Embedding rewriter.
type EmbeddingOption func(*Embedding)

// WithNeighborCount overrides the number of neighbors looked up (default 10).
func WithNeighborCount(n int) EmbeddingOption {
	return func(e *Embedding) {
		if n > 0 {
			e.topN = n
		}
	}
}

// WithEmbeddingLogger sets a custom logger.
func WithEmbeddingLogger(logger *slog.Logger) EmbeddingOption {
	return func(e *Embedding) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewEmbedding creates an embedding-similarity rewriter over a model.
func NewEmbedding(source NeighborSource, opts ...EmbeddingOption) (*Embedding, error) {
	if source == nil {
		return nil, ErrNeighborSourceRequired
	}
	e := &Embedding{
		source: source,
		topN:   defaultNeighborCount,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Rewrite looks up the term's nearest neighbors and appends the original
// term last. An out-of-vocabulary term is not an error: the neighbor list
// is simply empty and the result is the original term alone.
func (e *Embedding) Rewrite(_ context.Context, term string) ([]string, error) {
	neighbors := e.source.SimilarNeighbors(term, e.topN)
	if len(neighbors) == 0 {
		e.logger.Debug("term out of vocabulary", "term", term)
	}

	expansions := make([]string, len(neighbors))
	for i, n := range neighbors {
		expansions[i] = n.Term
	}
	return finalize(expansions, term), nil
}
