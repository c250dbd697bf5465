package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/widen/core"
	"github.com/poiesic/widen/index"
)

// Engine searches a document index over a fixed list of fields.
type Engine struct {
	idx    index.Index
	fields []string
	limit  int
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithFields restricts searches to the named indexed fields.
// Default is every indexed field of the schema, in schema order.
func WithFields(fields ...string) Option {
	return func(e *Engine) error {
		e.fields = slices.Clone(fields)
		return nil
	}
}

// WithLimit caps the number of hits per search.
// Zero keeps the index default.
func WithLimit(limit int) Option {
	return func(e *Engine) error {
		e.limit = limit
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a search engine over the given index.
func NewEngine(idx index.Index, opts ...Option) (*Engine, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}

	e := &Engine{
		idx:    idx,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	schema := idx.Schema()
	if len(e.fields) == 0 {
		e.fields = schema.IndexedFields()
	}
	if len(e.fields) == 0 {
		return nil, ErrNoSearchFields
	}
	for _, name := range e.fields {
		f, ok := schema.Field(name)
		if !ok || f.Kind == core.KindIdentifier {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}

	return e, nil
}

// Fields returns the field names the engine searches against.
func (e *Engine) Fields() []string {
	return slices.Clone(e.fields)
}

// Identifier returns the name of the schema's identifier field, or "" if
// the schema declares none.
func (e *Engine) Identifier() string {
	f, ok := e.idx.Schema().Identifier()
	if !ok {
		return ""
	}
	return f.Name
}

// Search runs a plain-text query against the configured fields and returns
// the index's ranked hits unmodified. The result is finite and never nil on
// success; no matches yields an empty slice.
func (e *Engine) Search(ctx context.Context, text string) ([]core.Hit, error) {
	hits, err := e.idx.Search(ctx, index.Query{
		Text:   text,
		Fields: e.fields,
		Limit:  e.limit,
	})
	if err != nil {
		e.logger.Error("search failed", "query", text, "err", err)
		return nil, err
	}
	e.logger.Debug("search completed", "query", text, "hits", len(hits))
	return hits, nil
}
