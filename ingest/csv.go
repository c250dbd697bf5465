package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// forEachRow streams a header-mapped CSV, calling fn with each row as a
// column-name-to-value map and its 1-based record number. Rows with the
// wrong field count are reported through fn's error return path by the
// caller; rows are never buffered.
func forEachRow(r io.Reader, required []string, fn func(record int, row map[string]string, err error)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrMissingHeader
		}
		return err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	for record := 1; ; record++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fn(record, nil, err)
			continue
		}

		row := make(map[string]string, len(header))
		for name, i := range index {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}
		fn(record, row, nil)
	}
}
