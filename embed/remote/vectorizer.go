package remote

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/widen/embed"
)

// Vectorizer produces embedding models from term lists via an
// OpenAI-compatible embeddings API.
type Vectorizer struct {
	embedder  embeddings.Embedder
	batchSize int
	logger    *slog.Logger
}

// NewVectorizer creates a vectorizer from the configuration.
func NewVectorizer(config *Config) (*Vectorizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	batchSize := config.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Vectorizer{
		embedder:  embedder,
		batchSize: batchSize,
		logger:    slog.Default().With("component", "remote-vectorizer"),
	}, nil
}

// BuildModel vectorizes every term and assembles an embedding model.
// Requests go out in batches; a failed batch fails the whole build.
func (v *Vectorizer) BuildModel(ctx context.Context, terms []string) (*embed.Model, error) {
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}

	vectors := make(map[string][]float32, len(terms))
	for start := 0; start < len(terms); start += v.batchSize {
		end := start + v.batchSize
		if end > len(terms) {
			end = len(terms)
		}
		batch := terms[start:end]

		v.logger.Debug("vectorizing batch", "from", start, "count", len(batch))
		embedded, err := v.embedder.EmbedDocuments(ctx, batch)
		if err != nil {
			v.logger.Error("failed to vectorize batch", "from", start, "err", err)
			return nil, err
		}
		if len(embedded) < len(batch) {
			return nil, ErrShortResponse
		}
		for i, term := range batch {
			vectors[term] = embedded[i]
		}
	}

	return embed.NewModel(vectors)
}
