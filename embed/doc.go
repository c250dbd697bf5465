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

// Package embed trains and queries word embedding models.
//
// A Model maps vocabulary terms to unit-length vectors and answers
// nearest-neighbor queries by cosine similarity. Models are produced either
// by the local skip-gram trainer in this package or by the remote
// subpackage, which delegates vectorization to an embeddings API.
// Multi-word phrases can be detected in a corpus ahead of training so that
// collocations like "machine learning" become single vocabulary terms.
package embed
