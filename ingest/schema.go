package ingest

import "github.com/poiesic/widen/core"

// CatalogSchema describes documents from the JSON course catalog: a stored
// slug identifier, a stored searchable title, and five searchable text
// fields that are not returned in hits.
func CatalogSchema() core.Schema {
	return core.NewSchema(
		core.Field{Name: "slug", Kind: core.KindIdentifier},
		core.Field{Name: "title", Kind: core.KindStoredText},
		core.Field{Name: "subtitle", Kind: core.KindIndexedText},
		core.Field{Name: "expected_learning", Kind: core.KindIndexedText},
		core.Field{Name: "syllabus", Kind: core.KindIndexedText},
		core.Field{Name: "summary", Kind: core.KindIndexedText},
		core.Field{Name: "short_summary", Kind: core.KindIndexedText},
	)
}

// CorpusSchema describes documents from the course-materials CSV corpus.
func CorpusSchema() core.Schema {
	return core.NewSchema(
		core.Field{Name: "course_id", Kind: core.KindIdentifier},
		core.Field{Name: "display_name", Kind: core.KindStoredText},
		core.Field{Name: "contents", Kind: core.KindIndexedText},
	)
}

// ListingsSchema describes documents from the course-listings CSV.
func ListingsSchema() core.Schema {
	return core.NewSchema(
		core.Field{Name: "course_id", Kind: core.KindIdentifier},
		core.Field{Name: "name", Kind: core.KindStoredText},
	)
}
