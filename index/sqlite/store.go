package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/poiesic/widen/core"
	"github.com/poiesic/widen/index"
)

const dbFileName = "index.db"

// Store is a document index backed by a SQLite database with an FTS5
// external-content table for full-text search.
type Store struct {
	db     *sql.DB
	schema core.Schema
	logger *slog.Logger

	mu      sync.Mutex
	writing bool
	closed  bool
}

var _ index.Index = (*Store)(nil)

// Exists reports whether an index already exists at the location.
// Callers must check this before Create; creating twice at the same
// location is undefined.
func Exists(location string) bool {
	_, err := os.Stat(filepath.Join(location, dbFileName))
	return err == nil
}

// Create allocates a fresh, empty index at the location, which is created
// if missing. The schema is fixed for the lifetime of the index.
func Create(schema core.Schema, location string) (*Store, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	indexed := schema.IndexedFields()
	if len(indexed) == 0 {
		return nil, index.ErrNoIndexedFields
	}

	if err := os.MkdirAll(location, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
	}

	db, err := openDB(filepath.Join(location, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
	}

	if err := initTables(db, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
	}

	return &Store{
		db:     db,
		schema: schema,
		logger: slog.Default().With("component", "sqlite-index"),
	}, nil
}

// Open loads an existing index and its schema from the location.
// Returns index.ErrNotFound if no index exists there.
func Open(location string) (*Store, error) {
	path := filepath.Join(location, dbFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", index.ErrNotFound, location)
		}
		return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", index.ErrStorage, err)
	}

	schema, err := loadSchema(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		schema: schema,
		logger: slog.Default().With("component", "sqlite-index"),
	}, nil
}

// Schema returns the schema fixed at creation time.
func (s *Store) Schema() core.Schema {
	return s.schema
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// openDB opens the database file and applies the pragmas the index relies on.
// WAL allows concurrent readers while a writer is active; busy_timeout
// reduces SQLITE_BUSY errors under contention.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

func initTables(db *sql.DB, schema core.Schema) error {
	cols := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		cols = append(cols, f.Name+" TEXT")
	}
	if _, err := db.Exec("CREATE TABLE docs (" + strings.Join(cols, ", ") + ")"); err != nil {
		return err
	}

	indexed := schema.IndexedFields()
	ftsCols := strings.Join(indexed, ", ")
	stmt := "CREATE VIRTUAL TABLE docs_fts USING fts5(" + ftsCols +
		", content='docs', content_rowid='rowid')"
	if _, err := db.Exec(stmt); err != nil {
		return err
	}

	if _, err := db.Exec("CREATE TABLE widen_meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)"); err != nil {
		return err
	}
	encoded, err := encodeSchema(schema)
	if err != nil {
		return err
	}
	_, err = db.Exec("INSERT INTO widen_meta (key, value) VALUES ('schema', ?)", encoded)
	return err
}

// fieldRecord is the persisted form of one schema field.
type fieldRecord struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func encodeSchema(schema core.Schema) (string, error) {
	records := make([]fieldRecord, len(schema.Fields))
	for i, f := range schema.Fields {
		records[i] = fieldRecord{Name: f.Name, Kind: f.Kind.String()}
	}
	bs, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func loadSchema(db *sql.DB) (core.Schema, error) {
	var encoded string
	err := db.QueryRow("SELECT value FROM widen_meta WHERE key = 'schema'").Scan(&encoded)
	if err != nil {
		return core.Schema{}, fmt.Errorf("%w: missing schema record: %v", index.ErrStorage, err)
	}

	var records []fieldRecord
	if err := json.Unmarshal([]byte(encoded), &records); err != nil {
		return core.Schema{}, fmt.Errorf("%w: corrupt schema record: %v", index.ErrStorage, err)
	}

	fields := make([]core.Field, len(records))
	for i, r := range records {
		kind, ok := core.KindFromString(r.Kind)
		if !ok {
			return core.Schema{}, fmt.Errorf("%w: unknown field kind %q", index.ErrStorage, r.Kind)
		}
		fields[i] = core.Field{Name: r.Name, Kind: kind}
	}
	return core.NewSchema(fields...), nil
}
