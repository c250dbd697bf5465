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

// Package ingest loads course-catalog datasets into indexable documents.
//
// Three source formats are supported: a JSON course catalog, a CSV corpus
// of course materials, and a CSV of plain course listings. Each loader
// returns the documents it could extract together with a Report of
// per-record failures; a bad record never aborts a load. IndexDocuments
// writes a batch to an index in a single atomic session.
package ingest
