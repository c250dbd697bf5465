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


// Package rewrite expands a search term into a richer set of related terms
// before searching, improving recall over sparse vocabulary.
//
// Three interchangeable strategies implement the Rewriter contract: Control
// (identity), Taxonomy (external category-graph expansion), and Embedding
// (nearest neighbors in a trained vector space). Every strategy's result
// lists expansions first and the original term exactly once, last.
//
// The Expander composes a Rewriter with one or more search engines: expand
// the term, search each expansion, and merge the ranked result lists with
// first-seen deduplication by document identifier.
package rewrite
