package ingest

import "fmt"

// Failure records one rejected source record.
type Failure struct {
	// Record is the 1-based position of the record in its source.
	Record int
	Err    error
}

func (f Failure) String() string {
	return fmt.Sprintf("record %d: %v", f.Record, f.Err)
}

// Report aggregates the outcome of a load. Per-record failures are
// collected here instead of aborting the load or being discarded.
type Report struct {
	Loaded   int
	Failures []Failure
}

func (r *Report) addFailure(record int, err error) {
	r.Failures = append(r.Failures, Failure{Record: record, Err: err})
}

// Clean reports whether every record loaded successfully.
func (r *Report) Clean() bool {
	return len(r.Failures) == 0
}

func (r *Report) String() string {
	return fmt.Sprintf("%d loaded, %d failed", r.Loaded, len(r.Failures))
}
