package ingest

import (
	"io"

	"github.com/poiesic/widen/core"
)

// LoadListings reads the course-listings CSV (columns course_id, name).
func LoadListings(r io.Reader) ([]core.Document, *Report, error) {
	report := &Report{}

	var docs []core.Document
	err := forEachRow(r, []string{"course_id", "name"},
		func(record int, row map[string]string, err error) {
			if err != nil {
				report.addFailure(record, err)
				return
			}
			if row["course_id"] == "" {
				report.addFailure(record, errMissingCourseID)
				return
			}
			docs = append(docs, core.Document{
				"course_id": row["course_id"],
				"name":      row["name"],
			})
			report.Loaded++
		})
	if err != nil {
		return nil, nil, err
	}
	return docs, report, nil
}
