// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package widen is a query-expanding search library for course catalogs.
//
// A Catalog bundles a full-text document index, a search engine over it,
// and an expansion pipeline that rewrites each query term into related
// terms before searching. Rewrite strategies range from the identity
// (no expansion) through taxonomy-graph lookups to embedding-space nearest
// neighbors.
package widen

import (
	"context"
	"log/slog"

	"github.com/poiesic/widen/core"
	"github.com/poiesic/widen/index"
	"github.com/poiesic/widen/index/sqlite"
	"github.com/poiesic/widen/rewrite"
	"github.com/poiesic/widen/search"
)

// Catalog is a searchable course catalog with query expansion.
type Catalog struct {
	store    *sqlite.Store
	engine   *search.Engine
	expander *rewrite.Expander
	logger   *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	rewriter rewrite.Rewriter
	fields   []string
	limit    int
	logger   *slog.Logger
}

// WithRewriter sets the query-expansion strategy.
// Default is rewrite.Control, i.e. no expansion.
func WithRewriter(rewriter rewrite.Rewriter) CatalogOption {
	return func(o *catalogOptions) {
		if rewriter != nil {
			o.rewriter = rewriter
		}
	}
}

// WithSearchFields restricts searches to the named indexed fields.
// Default is every indexed field of the schema.
func WithSearchFields(fields ...string) CatalogOption {
	return func(o *catalogOptions) {
		o.fields = fields
	}
}

// WithLimit caps the number of hits per expansion term.
func WithLimit(limit int) CatalogOption {
	return func(o *catalogOptions) {
		o.limit = limit
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Create builds a new catalog index at the location and returns a Catalog
// over it. Fails if an index already exists there.
func Create(schema core.Schema, location string, opts ...CatalogOption) (*Catalog, error) {
	store, err := sqlite.Create(schema, location)
	if err != nil {
		return nil, err
	}
	return newCatalog(store, opts)
}

// Open loads an existing catalog index from the location.
func Open(location string, opts ...CatalogOption) (*Catalog, error) {
	store, err := sqlite.Open(location)
	if err != nil {
		return nil, err
	}
	return newCatalog(store, opts)
}

// Exists reports whether a catalog index exists at the location.
func Exists(location string) bool {
	return sqlite.Exists(location)
}

func newCatalog(store *sqlite.Store, opts []CatalogOption) (*Catalog, error) {
	options := &catalogOptions{
		rewriter: rewrite.Control{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	engineOpts := []search.Option{search.WithLogger(options.logger)}
	if len(options.fields) > 0 {
		engineOpts = append(engineOpts, search.WithFields(options.fields...))
	}
	if options.limit > 0 {
		engineOpts = append(engineOpts, search.WithLimit(options.limit))
	}

	engine, err := search.NewEngine(store, engineOpts...)
	if err != nil {
		store.Close()
		return nil, err
	}

	expander, err := rewrite.NewExpander(options.rewriter,
		[]*search.Engine{engine},
		rewrite.WithExpanderLogger(options.logger))
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Catalog{
		store:    store,
		engine:   engine,
		expander: expander,
		logger:   options.logger,
	}, nil
}

// Schema returns the catalog's document schema.
func (c *Catalog) Schema() core.Schema {
	return c.store.Schema()
}

// Index exposes the underlying document index for ingestion.
func (c *Catalog) Index() index.Index {
	return c.store
}

// Search expands the term with the configured rewriter and returns the
// merged, deduplicated hits.
func (c *Catalog) Search(ctx context.Context, term string) ([]core.Hit, error) {
	return c.expander.Search(ctx, term)
}

// PlainSearch skips query expansion and searches the bare term.
func (c *Catalog) PlainSearch(ctx context.Context, term string) ([]core.Hit, error) {
	return c.engine.Search(ctx, term)
}

// Close releases the underlying index.
func (c *Catalog) Close() error {
	if err := c.store.Close(); err != nil {
		c.logger.Error("error closing index", "err", err)
		return err
	}
	return nil
}
