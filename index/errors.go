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


package index

import "errors"

var (
	// ErrStorage indicates the storage location is unusable.
	ErrStorage = errors.New("index storage failure")

	// ErrNotFound indicates no index exists at the given location.
	ErrNotFound = errors.New("index not found")

	// ErrSchemaMismatch indicates a document carries fields outside the schema.
	ErrSchemaMismatch = errors.New("document does not match schema")

	// ErrWriterConflict indicates another write session is already open.
	ErrWriterConflict = errors.New("write session already open")

	// ErrSessionDone indicates the write session was already committed or aborted.
	ErrSessionDone = errors.New("write session already finished")

	// ErrClosed indicates the index has been closed.
	ErrClosed = errors.New("index is closed")

	// ErrNoIndexedFields indicates a schema with no full-text searchable fields.
	ErrNoIndexedFields = errors.New("schema has no indexed fields")
)
