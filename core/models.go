package core

import (
	"encoding/binary"
	"strconv"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog documents that lack a natural key.
// It is generated from content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the identical ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// String renders the ID in decimal, the form used for identifier fields.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// FieldKind describes how an index treats a schema field.
type FieldKind int

const (
	// KindStoredText is full-text indexed and returned verbatim in hits.
	KindStoredText FieldKind = iota + 1
	// KindIndexedText is full-text indexed but not returned in hits.
	KindIndexedText
	// KindIdentifier is stored verbatim and used for result deduplication.
	KindIdentifier
)

// String returns the kind name used in persisted schema records.
func (k FieldKind) String() string {
	switch k {
	case KindStoredText:
		return "stored-text"
	case KindIndexedText:
		return "indexed-text"
	case KindIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// KindFromString parses a persisted kind name. Returns false for unknown names.
func KindFromString(s string) (FieldKind, bool) {
	switch s {
	case "stored-text":
		return KindStoredText, true
	case "indexed-text":
		return KindIndexedText, true
	case "identifier":
		return KindIdentifier, true
	default:
		return 0, false
	}
}

// Field is one named, typed slot in a Schema.
type Field struct {
	Name string
	Kind FieldKind
}

// Schema is the ordered set of fields an index supports.
// It is fixed when the index is created and immutable thereafter.
type Schema struct {
	Fields []Field
}

// NewSchema builds a schema from fields in declaration order.
func NewSchema(fields ...Field) Schema {
	return Schema{Fields: fields}
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Identifier returns the schema's identifier field, if it declares one.
func (s Schema) Identifier() (Field, bool) {
	for _, f := range s.Fields {
		if f.Kind == KindIdentifier {
			return f, true
		}
	}
	return Field{}, false
}

// IndexedFields returns the names of full-text searchable fields, in schema order.
func (s Schema) IndexedFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Kind == KindStoredText || f.Kind == KindIndexedText {
			names = append(names, f.Name)
		}
	}
	return names
}

// StoredFields returns the names of fields returned in hits, in schema order.
func (s Schema) StoredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Kind == KindStoredText || f.Kind == KindIdentifier {
			names = append(names, f.Name)
		}
	}
	return names
}

// Document maps field names to text values. Its fields must be a subset of
// the schema of the index it is written to.
type Document map[string]string

// Hit is one search result: the stored fields of a matching document.
type Hit map[string]string
