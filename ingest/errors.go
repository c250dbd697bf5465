package ingest

import "errors"

var (
	// ErrIndexRequired indicates a nil index passed to IndexDocuments.
	ErrIndexRequired = errors.New("index is required")

	// ErrNoDocuments indicates an attempt to index an empty batch.
	ErrNoDocuments = errors.New("no documents to index")

	// ErrMissingHeader indicates a CSV source without a header row.
	ErrMissingHeader = errors.New("missing header row")

	// ErrMissingColumn indicates a CSV header lacking a required column.
	ErrMissingColumn = errors.New("missing required column")
)
