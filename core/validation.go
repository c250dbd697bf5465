package core

import "fmt"

// validFieldName reports whether a name is safe to use as a column identifier:
// a letter or underscore followed by letters, digits, or underscores.
func validFieldName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Validate checks that the schema is well formed: non-empty, field names
// valid and unique, kinds known, at most one identifier field.
func (s Schema) Validate() error {
	if len(s.Fields) == 0 {
		return ErrEmptySchema
	}

	seen := make(map[string]bool, len(s.Fields))
	identifiers := 0
	for _, f := range s.Fields {
		if f.Name == "" {
			return ErrEmptyFieldName
		}
		if !validFieldName(f.Name) {
			return fmt.Errorf("%w: %q", ErrInvalidFieldName, f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true

		switch f.Kind {
		case KindStoredText, KindIndexedText:
		case KindIdentifier:
			identifiers++
		default:
			return fmt.Errorf("%w: field %q", ErrInvalidFieldKind, f.Name)
		}
	}
	if identifiers > 1 {
		return ErrMultipleIdentifiers
	}
	return nil
}
