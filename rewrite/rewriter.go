package rewrite

import "context"

// Rewriter expands one input term into an ordered list of related terms.
//
// The result always contains the original term exactly once, as the last
// element; expansions come first, deduplicated in discovery order. A
// rewriter that cannot expand a term returns just the original.
type Rewriter interface {
	Rewrite(ctx context.Context, term string) ([]string, error)
}

// Control is the identity strategy: no expansion, no side effects.
type Control struct{}

var _ Rewriter = Control{}

// Rewrite returns the term unchanged as a single-element list.
func (Control) Rewrite(_ context.Context, term string) ([]string, error) {
	return []string{term}, nil
}

// finalize enforces the result invariant: expansions deduplicated in order,
// occurrences of the original removed, original appended exactly once, last.
func finalize(expansions []string, term string) []string {
	result := make([]string, 0, len(expansions)+1)
	seen := make(map[string]bool, len(expansions))
	for _, e := range expansions {
		if e == "" || e == term || seen[e] {
			continue
		}
		seen[e] = true
		result = append(result, e)
	}
	return append(result, term)
}
