package ingest

import (
	"errors"
	"io"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/widen/core"
)

// supportedCategories are the corpus content types worth indexing. Other
// categories (raw html pages in particular) carry too much markup noise.
var supportedCategories = map[string]bool{
	"problem": true,
	"video":   true,
	"course":  true,
}

var errMissingCourseID = errors.New("record has no course_id")

// LoadCorpus reads the course-materials CSV (columns course_id,
// display_name, contents, category). Rows outside the supported categories
// are skipped silently; rows without a course identifier are rejected into
// the report. Markup is stripped from contents on a worker pool, since
// content bodies can run to megabytes.
func LoadCorpus(r io.Reader) ([]core.Document, *Report, error) {
	report := &Report{}

	var docs []core.Document
	err := forEachRow(r, []string{"course_id", "display_name", "contents", "category"},
		func(record int, row map[string]string, err error) {
			if err != nil {
				report.addFailure(record, err)
				return
			}
			if !supportedCategories[row["category"]] {
				return
			}
			if row["course_id"] == "" {
				report.addFailure(record, errMissingCourseID)
				return
			}
			docs = append(docs, core.Document{
				"course_id":    row["course_id"],
				"display_name": row["display_name"],
				"contents":     row["contents"],
			})
		})
	if err != nil {
		return nil, nil, err
	}

	if err := stripAll(docs, "contents"); err != nil {
		return nil, nil, err
	}
	report.Loaded = len(docs)
	return docs, report, nil
}

// stripAll strips markup from one field of every document, fanning the work
// out over a pool sized to half the CPUs.
func stripAll(docs []core.Document, field string) error {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, doc := range docs {
		doc := doc
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			doc[field] = stripHTML(doc[field])
		}); err != nil {
			wg.Done()
			wg.Wait()
			return err
		}
	}
	wg.Wait()
	return nil
}
