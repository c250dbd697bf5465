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


package search

import "errors"

var (
	// ErrIndexRequired is returned when an index is not provided.
	ErrIndexRequired = errors.New("index required")

	// ErrNoSearchFields is returned when neither the options nor the schema
	// yield any fields to search against.
	ErrNoSearchFields = errors.New("no fields to search against")

	// ErrUnknownField is returned when a configured field is absent from the
	// index schema or not full-text indexed.
	ErrUnknownField = errors.New("field is not indexed by this schema")
)
