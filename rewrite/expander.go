package rewrite

import (
	"context"
	"log/slog"

	"github.com/poiesic/widen/core"
	"github.com/poiesic/widen/search"
)

// Expander composes a Rewriter with one or more search engines: expand the
// term, search every expansion, merge the ranked result lists.
type Expander struct {
	rewriter Rewriter
	engines  []*search.Engine
	logger   *slog.Logger
	monitor  Monitor
}

// ExpanderOption configures an Expander.
type ExpanderOption func(*Expander) error

// WithMonitor sets a pipeline monitor. Default is a no-op.
func WithMonitor(monitor Monitor) ExpanderOption {
	return func(x *Expander) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		x.monitor = monitor
		return nil
	}
}

// WithExpanderLogger sets a custom logger.
// Default is slog.Default().
func WithExpanderLogger(logger *slog.Logger) ExpanderOption {
	return func(x *Expander) error {
		if logger == nil {
			logger = slog.Default()
		}
		x.logger = logger
		return nil
	}
}

// NewExpander creates an expansion pipeline.
func NewExpander(rewriter Rewriter, engines []*search.Engine, opts ...ExpanderOption) (*Expander, error) {
	if rewriter == nil {
		return nil, ErrRewriterRequired
	}
	if len(engines) == 0 {
		return nil, ErrEngineRequired
	}

	x := &Expander{
		rewriter: rewriter,
		engines:  engines,
		logger:   slog.Default(),
		monitor:  &noopMonitor{},
	}
	for _, opt := range opts {
		if err := opt(x); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Search expands the term and searches every expansion against every
// engine, merging the per-term result lists in term order.
//
// A rewriter failure never fails the search: the pipeline degrades to the
// bare original term and logs the error. Merging deduplicates documents by
// their identifier field, keeping the first occurrence, and never reorders
// hits within a single underlying result list.
func (x *Expander) Search(ctx context.Context, term string) ([]core.Hit, error) {
	x.monitor.Start(term)

	terms, err := x.rewriter.Rewrite(ctx, term)
	if err != nil {
		x.logger.Warn("rewrite failed, degrading to original term", "term", term, "err", err)
		x.monitor.RewriteDegraded(term, err)
		terms = []string{term}
	}
	x.monitor.AfterRewrite(terms)

	merged := make([]core.Hit, 0)
	seen := make(map[string]bool)

	for _, t := range terms {
		for _, engine := range x.engines {
			hits, err := engine.Search(ctx, t)
			if err != nil {
				return nil, err
			}
			x.monitor.AfterTermSearch(t, hits)

			idField := engine.Identifier()
			for _, hit := range hits {
				if idField != "" {
					if id, ok := hit[idField]; ok {
						if seen[id] {
							continue
						}
						seen[id] = true
					}
				}
				merged = append(merged, hit)
			}
		}
	}

	x.monitor.Finish(merged)
	return merged, nil
}
