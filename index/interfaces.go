package index

import (
	"context"

	"github.com/poiesic/widen/core"
)

// Query is a parsed multi-field search request. Fields must name indexed
// fields of the target schema; terms are OR-combined across fields.
type Query struct {
	// Text is the raw query text, tokenized by the engine.
	Text string

	// Fields are the indexed field names to search against.
	Fields []string

	// Limit caps the number of hits. Zero means the engine default.
	Limit int
}

// Index is a searchable, schema-typed document collection.
// Implementations must allow concurrent searches; writes are serialized
// through a single exclusive WriteSession.
type Index interface {
	// Schema returns the schema fixed at creation time.
	Schema() core.Schema

	// BeginWrite acquires exclusive write access.
	// Returns ErrWriterConflict if another session is already open.
	BeginWrite() (WriteSession, error)

	// Search runs a read-only ranked search and returns the stored fields
	// of each matching document, best match first. The result is never nil
	// on success; no matches yields an empty slice.
	Search(ctx context.Context, q Query) ([]core.Hit, error)

	// Close releases the underlying storage. Searches after Close fail
	// with ErrClosed.
	Close() error
}

// WriteSession is a scoped, exclusive batch-write transaction.
// Either every added document is committed, or none are.
type WriteSession interface {
	// Add queues a document. Returns ErrSchemaMismatch if the document's
	// fields are not a subset of the schema.
	Add(doc core.Document) error

	// Commit durably persists all queued documents atomically.
	// On failure the session is aborted and nothing is persisted.
	Commit() error

	// Abort discards all queued documents. Always safe to call, including
	// after Commit or a partial failure, in which case it is a no-op.
	Abort() error
}
