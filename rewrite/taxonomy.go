package rewrite

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// categoryPrefix is the namespace marker carried by category titles.
const categoryPrefix = "Category:"

// DefaultDropwords mark generic or noise category labels (meta-pages,
// authorship, redirects) that add nothing as search expansions. The list is
// tuned to one taxonomy's conventions and makes no claim of completeness.
var DefaultDropwords = []string{
	"articles",
	"wikipedia",
	"accuracy",
	"statements",
	"magic",
	"pages",
	"authors",
	"editors",
	"appearances",
	"redirects",
	"stubs",
	"cs1",
}

// CategorySource looks up the category labels associated with a title.
// Implemented by taxonomy.Client.
type CategorySource interface {
	Categories(ctx context.Context, title string) ([]string, error)
}

// Taxonomy expands a term through an external category graph, treating the
// term as a title lookup.
type Taxonomy struct {
	source    CategorySource
	dropwords []string
	logger    *slog.Logger
}

var _ Rewriter = (*Taxonomy)(nil)

// TaxonomyOption configures a Taxonomy rewriter.
type TaxonomyOption func(*Taxonomy)

// WithDropwords replaces the default dropword list.
func WithDropwords(words ...string) TaxonomyOption {
	return func(t *Taxonomy) {
		t.dropwords = slices.Clone(words)
	}
}

// WithTaxonomyLogger sets a custom logger.
func WithTaxonomyLogger(logger *slog.Logger) TaxonomyOption {
	return func(t *Taxonomy) {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
	}
}

// NewTaxonomy creates a taxonomy-graph rewriter.
func NewTaxonomy(source CategorySource, opts ...TaxonomyOption) (*Taxonomy, error) {
	if source == nil {
		return nil, ErrCategorySourceRequired
	}
	t := &Taxonomy{
		source:    source,
		dropwords: DefaultDropwords,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Rewrite fetches the term's categories, cleans each label (namespace
// prefix stripped, lowercased), drops labels containing a dropword or
// matching the term itself, and appends the original term last.
//
// A fetch or parse failure propagates (wrapped taxonomy.ErrFetch); callers
// that prefer degradation over propagation handle it — the Expander
// degrades to the bare original term.
func (t *Taxonomy) Rewrite(ctx context.Context, term string) ([]string, error) {
	labels, err := t.source.Categories(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("rewrite %q: %w", term, err)
	}

	loweredTerm := strings.ToLower(term)
	expansions := make([]string, 0, len(labels))
	for _, label := range labels {
		cleaned := cleanCategory(label)
		if cleaned == "" || cleaned == loweredTerm {
			continue
		}
		if t.dropped(cleaned) {
			t.logger.Debug("dropped category label", "label", label)
			continue
		}
		expansions = append(expansions, cleaned)
	}
	return finalize(expansions, term), nil
}

// cleanCategory strips the namespace prefix and lowercases the label.
func cleanCategory(label string) string {
	if i := strings.LastIndex(label, categoryPrefix); i >= 0 {
		label = label[i+len(categoryPrefix):]
	}
	return strings.ToLower(strings.TrimSpace(label))
}

func (t *Taxonomy) dropped(label string) bool {
	for _, word := range t.dropwords {
		if strings.Contains(label, strings.ToLower(word)) {
			return true
		}
	}
	return false
}
