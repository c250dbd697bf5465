package embed

import (
	"math"
	"slices"
)

// Neighbor is a vocabulary term with its cosine similarity to a query term.
type Neighbor struct {
	Term  string
	Score float32
}

// Model is an immutable embedding vocabulary. All stored vectors are unit
// length, so cosine similarity reduces to a dot product.
type Model struct {
	dim     int
	terms   []string
	vectors map[string][]float32
}

// NewModel builds a model from a term-to-vector mapping. Vectors are
// normalized to unit length; they must all share one dimension.
func NewModel(vectors map[string][]float32) (*Model, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}

	m := &Model{
		terms:   make([]string, 0, len(vectors)),
		vectors: make(map[string][]float32, len(vectors)),
	}
	for term, vector := range vectors {
		if m.dim == 0 {
			m.dim = len(vector)
		}
		if len(vector) == 0 || len(vector) != m.dim {
			return nil, ErrDimensionMismatch
		}
		m.terms = append(m.terms, term)
		m.vectors[term] = normalizeVector(vector)
	}
	slices.Sort(m.terms)
	return m, nil
}

// Dim returns the vector dimension.
func (m *Model) Dim() int {
	return m.dim
}

// Len returns the vocabulary size.
func (m *Model) Len() int {
	return len(m.terms)
}

// Terms returns the vocabulary in sorted order.
func (m *Model) Terms() []string {
	return slices.Clone(m.terms)
}

// Contains reports whether the term is in the vocabulary.
func (m *Model) Contains(term string) bool {
	_, ok := m.vectors[term]
	return ok
}

// Vector returns the unit vector for a term.
func (m *Model) Vector(term string) ([]float32, bool) {
	v, ok := m.vectors[term]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// SimilarNeighbors returns up to topN vocabulary terms nearest to the query
// term, sorted by descending cosine similarity. The query term itself is
// excluded. An out-of-vocabulary term yields an empty result.
func (m *Model) SimilarNeighbors(term string, topN int) []Neighbor {
	query, ok := m.vectors[term]
	if !ok || topN <= 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, len(m.terms)-1)
	for _, candidate := range m.terms {
		if candidate == term {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			Term:  candidate,
			Score: dotProduct(query, m.vectors[candidate]),
		})
	}

	// Sort by similarity descending
	slices.SortFunc(neighbors, func(a, b Neighbor) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(neighbors) > topN {
		neighbors = neighbors[:topN]
	}
	return neighbors
}

// normalizeVector normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func normalizeVector(v []float32) []float32 {
	var magnitude float32
	for _, val := range v {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	result := make([]float32, len(v))
	if magnitude == 0 {
		return result
	}
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
