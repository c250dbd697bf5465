package ingest

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/poiesic/widen/core"
)

// courseRecord mirrors one entry of the JSON catalog.
type courseRecord struct {
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	ExpectedLearning string `json:"expected_learning"`
	Syllabus         string `json:"syllabus"`
	Summary          string `json:"summary"`
	ShortSummary     string `json:"short_summary"`
}

type catalogFile struct {
	Courses []courseRecord `json:"courses"`
}

var errEmptyRecord = errors.New("record has no content")

// LoadCatalog reads a JSON course catalog of the form
// {"courses": [...]}. Records without a slug get a content-derived
// identifier; records with neither slug nor title are rejected into the
// report.
func LoadCatalog(r io.Reader) ([]core.Document, *Report, error) {
	var file catalogFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, nil, err
	}

	report := &Report{}
	docs := make([]core.Document, 0, len(file.Courses))
	for i, course := range file.Courses {
		if course.Slug == "" && course.Title == "" {
			report.addFailure(i+1, errEmptyRecord)
			continue
		}
		slug := course.Slug
		if slug == "" {
			slug = core.IDFromContent(course.Title).String()
		}
		docs = append(docs, core.Document{
			"slug":              slug,
			"title":             course.Title,
			"subtitle":          course.Subtitle,
			"expected_learning": course.ExpectedLearning,
			"syllabus":          course.Syllabus,
			"summary":           course.Summary,
			"short_summary":     course.ShortSummary,
		})
		report.Loaded++
	}
	return docs, report, nil
}
