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


// Package index defines the document index abstraction for widen.
//
// An index is a named, schema-typed collection of documents identified by a
// filesystem location. It supports creation, reopening, batch writes through
// an exclusive session that commits or aborts as a unit, and ranked
// multi-field text search. The interfaces here decouple search logic from
// the storage engine; the sqlite subpackage provides the implementation.
package index
