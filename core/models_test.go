package core

import "testing"

func TestIDFromContentDeterministic(t *testing.T) {
	a := IDFromContent("intro to machine learning")
	b := IDFromContent("intro to machine learning")
	c := IDFromContent("intro to cooking")

	if a != b {
		t.Fatalf("Expected identical IDs for identical content, got %d and %d", a, b)
	}
	if a == c {
		t.Fatal("Expected different IDs for different content")
	}
	if a == 0 {
		t.Fatal("Expected non-zero ID")
	}
}

func TestSchemaFieldSets(t *testing.T) {
	schema := NewSchema(
		Field{Name: "slug", Kind: KindIdentifier},
		Field{Name: "title", Kind: KindStoredText},
		Field{Name: "syllabus", Kind: KindIndexedText},
	)

	indexed := schema.IndexedFields()
	if len(indexed) != 2 || indexed[0] != "title" || indexed[1] != "syllabus" {
		t.Fatalf("Unexpected indexed fields: %v", indexed)
	}

	stored := schema.StoredFields()
	if len(stored) != 2 || stored[0] != "slug" || stored[1] != "title" {
		t.Fatalf("Unexpected stored fields: %v", stored)
	}

	id, ok := schema.Identifier()
	if !ok || id.Name != "slug" {
		t.Fatalf("Expected slug identifier, got %v (ok=%v)", id, ok)
	}

	if _, ok := schema.Field("missing"); ok {
		t.Fatal("Expected lookup miss for unknown field")
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range []FieldKind{KindStoredText, KindIndexedText, KindIdentifier} {
		parsed, ok := KindFromString(k.String())
		if !ok || parsed != k {
			t.Fatalf("Kind %v did not round-trip (got %v, ok=%v)", k, parsed, ok)
		}
	}
	if _, ok := KindFromString("bogus"); ok {
		t.Fatal("Expected parse failure for unknown kind")
	}
}
