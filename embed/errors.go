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

package embed

import "errors"

var (
	// ErrNoVectors indicates an attempt to build a model from an empty
	// term-to-vector mapping.
	ErrNoVectors = errors.New("no vectors")

	// ErrDimensionMismatch indicates vectors of inconsistent lengths.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmptyCorpus indicates a training corpus with no sentences.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrEmptyVocabulary indicates that no term in the corpus met the
	// minimum count threshold.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
)
