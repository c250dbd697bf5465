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


package core

import "errors"

// Domain validation errors
var (
	// ErrEmptySchema indicates a schema with no fields.
	ErrEmptySchema = errors.New("schema has no fields")

	// ErrEmptyFieldName indicates a schema field with an empty name.
	ErrEmptyFieldName = errors.New("field name cannot be empty")

	// ErrInvalidFieldName indicates a field name that is not a valid identifier.
	ErrInvalidFieldName = errors.New("invalid field name")

	// ErrDuplicateField indicates two schema fields sharing a name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrInvalidFieldKind indicates an unknown FieldKind value.
	ErrInvalidFieldKind = errors.New("invalid field kind")

	// ErrMultipleIdentifiers indicates a schema with more than one identifier field.
	ErrMultipleIdentifiers = errors.New("schema may declare at most one identifier field")
)
