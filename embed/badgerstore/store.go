package badgerstore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/poiesic/widen/embed"
)

// Store wraps a BadgerDB instance holding at most one embedding model.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens a model store at the given path, creating the directory if it
// doesn't exist. Pass inMemory true for an ephemeral store.
func Open(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveModel persists the model, replacing any previously stored one. Term
// records go through a write batch so large vocabularies are not bound by
// transaction size limits.
func (s *Store) SaveModel(model *embed.Model) error {
	if model == nil {
		return ErrModelRequired
	}

	if err := s.db.DropAll(); err != nil {
		return err
	}

	batch := s.db.NewWriteBatch()
	defer batch.Cancel()

	meta := embed.ModelMeta{Dim: model.Dim(), Terms: model.Len()}
	if err := batch.Set([]byte(modelMetaKey), embed.MarshalModelMeta(meta)); err != nil {
		return err
	}

	for _, term := range model.Terms() {
		vector, _ := model.Vector(term)
		record := embed.TermRecord{Term: term, Vector: vector}
		if err := batch.Set(makeTermKey(term), embed.MarshalTermRecord(record)); err != nil {
			return err
		}
	}

	if err := batch.Flush(); err != nil {
		return err
	}
	s.logger.Info("model saved", "terms", model.Len(), "dim", model.Dim())
	return nil
}

// LoadModel reads the stored model. Returns ErrNoModel if nothing has been
// saved.
func (s *Store) LoadModel() (*embed.Model, error) {
	var meta embed.ModelMeta
	vectors := make(map[string][]float32)

	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(modelMetaKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNoModel
			}
			return err
		}
		if err := item.Value(func(val []byte) error {
			var err error
			meta, err = embed.UnmarshalModelMeta(val)
			return err
		}); err != nil {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(termRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := embed.UnmarshalTermRecord(val)
				if err != nil {
					return err
				}
				vectors[record.Term] = record.Vector
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(vectors) != meta.Terms {
		return nil, fmt.Errorf("%w: %d term records, metadata says %d",
			ErrCorruptModel, len(vectors), meta.Terms)
	}

	model, err := embed.NewModel(vectors)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptModel, err)
	}
	if model.Dim() != meta.Dim {
		return nil, fmt.Errorf("%w: dimension %d, metadata says %d",
			ErrCorruptModel, model.Dim(), meta.Dim)
	}
	return model, nil
}
