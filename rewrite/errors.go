package rewrite

import "errors"

var (
	// ErrRewriterRequired is returned when a rewriter is not provided.
	ErrRewriterRequired = errors.New("rewriter required")

	// ErrEngineRequired is returned when no search engine is provided.
	ErrEngineRequired = errors.New("at least one search engine required")

	// ErrCategorySourceRequired is returned when a taxonomy rewriter is
	// built without a category source.
	ErrCategorySourceRequired = errors.New("category source required")

	// ErrNeighborSourceRequired is returned when an embedding rewriter is
	// built without a model.
	ErrNeighborSourceRequired = errors.New("neighbor source required")
)
