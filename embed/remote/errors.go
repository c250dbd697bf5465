package remote

import "errors"

var (
	// ErrHostRequired indicates a missing embedding service host URL.
	ErrHostRequired = errors.New("embedding host is required")

	// ErrInvalidHost indicates a host URL without an http or https scheme.
	ErrInvalidHost = errors.New("embedding host must be an http(s) URL")

	// ErrModelNameRequired indicates a missing embedding model identifier.
	ErrModelNameRequired = errors.New("embedding model name is required")

	// ErrNoTerms indicates an attempt to build a model from no terms.
	ErrNoTerms = errors.New("no terms to vectorize")

	// ErrShortResponse indicates the service returned fewer vectors than
	// terms requested.
	ErrShortResponse = errors.New("embedding service returned fewer vectors than requested")
)
