package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/widen/core"
	"github.com/poiesic/widen/index"
)

const defaultSearchLimit = 50

// Search runs a ranked multi-field full-text query. Terms are OR-combined
// across the query fields; hits carry stored fields only, best match first.
func (s *Store) Search(ctx context.Context, q index.Query) ([]core.Hit, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, index.ErrClosed
	}

	fields := q.Fields
	if len(fields) == 0 {
		fields = s.schema.IndexedFields()
	}
	for _, name := range fields {
		f, ok := s.schema.Field(name)
		if !ok || f.Kind == core.KindIdentifier {
			return nil, fmt.Errorf("%w: field %q is not indexed", index.ErrSchemaMismatch, name)
		}
	}

	match := buildMatch(q.Text, fields)
	if match == "" {
		return []core.Hit{}, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	stored := s.schema.StoredFields()
	query := "SELECT d." + strings.Join(stored, ", d.") +
		" FROM docs_fts f JOIN docs d ON d.rowid = f.rowid" +
		" WHERE docs_fts MATCH ? ORDER BY bm25(docs_fts) LIMIT ?"

	rows, err := s.db.QueryContext(ctx, query, match, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
	}
	defer rows.Close()

	hits := make([]core.Hit, 0)
	values := make([]any, len(stored))
	for rows.Next() {
		dest := make([]*string, len(stored))
		for i := range dest {
			var s string
			dest[i] = &s
			values[i] = dest[i]
		}
		if err := rows.Scan(values...); err != nil {
			return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
		}
		hit := make(core.Hit, len(stored))
		for i, name := range stored {
			hit[name] = *dest[i]
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
	}
	return hits, nil
}

// buildMatch turns raw query text into an FTS5 MATCH expression that ORs the
// escaped terms within each field and ORs the per-field expressions together.
// Quoting each term escapes the FTS5 operator characters.
func buildMatch(text string, fields []string) string {
	terms := splitTerms(text)
	if len(terms) == 0 {
		return ""
	}

	escaped := make([]string, len(terms))
	for i, term := range terms {
		escaped[i] = `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
	}
	termExpr := strings.Join(escaped, " OR ")

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + " : (" + termExpr + ")"
	}
	return strings.Join(parts, " OR ")
}

func splitTerms(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '.', ':', ';', '/', '\\', '(', ')', '"':
			return true
		}
		return false
	})
	var terms []string
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}
