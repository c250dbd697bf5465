package ingest

import (
	"log/slog"

	"github.com/poiesic/widen/core"
	"github.com/poiesic/widen/embed"
	"github.com/poiesic/widen/index"
)

// IndexDocuments writes a batch of documents to the index in one session.
// Any failure aborts the session, leaving the index as it was.
func IndexDocuments(idx index.Index, docs []core.Document) error {
	if idx == nil {
		return ErrIndexRequired
	}
	if len(docs) == 0 {
		return ErrNoDocuments
	}

	session, err := idx.BeginWrite()
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := session.Add(doc); err != nil {
			if abortErr := session.Abort(); abortErr != nil {
				slog.Default().Error("abort failed", "err", abortErr)
			}
			return err
		}
	}
	return session.Commit()
}

// TrainingSentences turns documents into tokenized sentences for embedding
// training, one sentence per named field per document. Empty fields are
// skipped.
func TrainingSentences(docs []core.Document, fields []string) [][]string {
	sentences := make([][]string, 0, len(docs))
	for _, doc := range docs {
		for _, field := range fields {
			tokens := embed.Tokenize(doc[field])
			if len(tokens) > 0 {
				sentences = append(sentences, tokens)
			}
		}
	}
	return sentences
}
