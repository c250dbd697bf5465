// Package search binds a document index to a fixed list of fields and
// exposes plain-text search over them.
//
// The Engine does no query rewriting of its own; it forwards the parsed
// multi-field query to the index and returns the ranked hits unmodified.
// Query expansion layers on top of it, see the rewrite package.
package search
