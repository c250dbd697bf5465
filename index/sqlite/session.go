package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/poiesic/widen/core"
	"github.com/poiesic/widen/index"
)

// WriteSession is an exclusive batch-write transaction against a Store.
// All queued documents are committed atomically or not at all.
type WriteSession struct {
	store *Store
	tx    *sql.Tx
	done  bool
}

var _ index.WriteSession = (*WriteSession)(nil)

// BeginWrite acquires exclusive write access to the index.
func (s *Store) BeginWrite() (index.WriteSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, index.ErrClosed
	}
	if s.writing {
		return nil, index.ErrWriterConflict
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
	}
	s.writing = true
	return &WriteSession{store: s, tx: tx}, nil
}

// Add queues a document for the commit. The document's fields must be a
// subset of the index schema.
func (w *WriteSession) Add(doc core.Document) error {
	if w.done {
		return index.ErrSessionDone
	}

	schema := w.store.schema
	for name := range doc {
		if _, ok := schema.Field(name); !ok {
			return fmt.Errorf("%w: unknown field %q", index.ErrSchemaMismatch, name)
		}
	}

	cols := make([]string, 0, len(doc))
	marks := make([]string, 0, len(doc))
	args := make([]any, 0, len(doc))
	for _, f := range schema.Fields {
		value, ok := doc[f.Name]
		if !ok {
			continue
		}
		cols = append(cols, f.Name)
		marks = append(marks, "?")
		args = append(args, value)
	}

	res, err := w.tx.Exec(
		"INSERT INTO docs ("+strings.Join(cols, ", ")+") VALUES ("+strings.Join(marks, ", ")+")",
		args...)
	if err != nil {
		w.fail()
		return fmt.Errorf("%w: %v", index.ErrStorage, err)
	}
	rowid, err := res.LastInsertId()
	if err != nil {
		w.fail()
		return fmt.Errorf("%w: %v", index.ErrStorage, err)
	}

	indexed := schema.IndexedFields()
	ftsCols := make([]string, 0, len(indexed)+1)
	ftsMarks := make([]string, 0, len(indexed)+1)
	ftsArgs := make([]any, 0, len(indexed)+1)
	ftsCols = append(ftsCols, "rowid")
	ftsMarks = append(ftsMarks, "?")
	ftsArgs = append(ftsArgs, rowid)
	for _, name := range indexed {
		ftsCols = append(ftsCols, name)
		ftsMarks = append(ftsMarks, "?")
		ftsArgs = append(ftsArgs, doc[name])
	}

	_, err = w.tx.Exec(
		"INSERT INTO docs_fts ("+strings.Join(ftsCols, ", ")+") VALUES ("+strings.Join(ftsMarks, ", ")+")",
		ftsArgs...)
	if err != nil {
		w.fail()
		return fmt.Errorf("%w: %v", index.ErrStorage, err)
	}
	return nil
}

// Commit durably persists all queued documents. On failure the session is
// aborted and the index keeps its pre-session state.
func (w *WriteSession) Commit() error {
	if w.done {
		return index.ErrSessionDone
	}
	err := w.tx.Commit()
	w.release()
	if err != nil {
		return fmt.Errorf("%w: %v", index.ErrStorage, err)
	}
	return nil
}

// Abort discards all queued documents. Safe to call at any point; after
// Commit or a failed Add it is a no-op.
func (w *WriteSession) Abort() error {
	if w.done {
		return nil
	}
	err := w.tx.Rollback()
	w.release()
	if err != nil && err != sql.ErrTxDone {
		return fmt.Errorf("%w: %v", index.ErrStorage, err)
	}
	return nil
}

// fail rolls the session back after a mid-batch storage error.
func (w *WriteSession) fail() {
	_ = w.tx.Rollback()
	w.release()
}

func (w *WriteSession) release() {
	w.done = true
	w.store.mu.Lock()
	w.store.writing = false
	w.store.mu.Unlock()
}
