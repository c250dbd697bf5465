// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/widen"
	"github.com/poiesic/widen/core"
	"github.com/poiesic/widen/embed"
	"github.com/poiesic/widen/embed/badgerstore"
	"github.com/poiesic/widen/embed/remote"
	"github.com/poiesic/widen/ingest"
	"github.com/poiesic/widen/rewrite"
	"github.com/poiesic/widen/taxonomy"
)

func main() {
	app := &cli.App{
		Name:  "widen",
		Usage: "Query-expanding search over course catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Build a search index from a course dataset",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "index",
						Aliases:  []string{"i"},
						Usage:    "Path to the index directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "dataset",
						Aliases:  []string{"d"},
						Usage:    "Path to the dataset file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Dataset format (catalog, corpus, listings)",
						Value: "catalog",
					},
				},
			},
			{
				Name:   "train",
				Usage:  "Train an embedding model from a course dataset",
				Action: trainCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "model",
						Aliases:  []string{"m"},
						Usage:    "Path to the model store directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "dataset",
						Aliases:  []string{"d"},
						Usage:    "Path to the dataset file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Dataset format (catalog, corpus, listings)",
						Value: "corpus",
					},
					&cli.IntFlag{
						Name:  "dim",
						Usage: "Vector dimension",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "epochs",
						Usage: "Training passes over the corpus",
						Value: 5,
					},
					&cli.IntFlag{
						Name:  "min-count",
						Usage: "Minimum term frequency",
						Value: 5,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Training worker count (0 = half the CPUs)",
					},
					&cli.BoolFlag{
						Name:  "phrases",
						Usage: "Detect multi-word phrases before training",
					},
					&cli.BoolFlag{
						Name:  "remote",
						Usage: "Vectorize the vocabulary via an embeddings API instead of training locally",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL (remote mode)",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (remote mode)",
						Value: "embeddinggemma",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search an index with optional query expansion",
				ArgsUsage: "<term>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "index",
						Aliases:  []string{"i"},
						Usage:    "Path to the index directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "rewriter",
						Aliases: []string{"r"},
						Usage:   "Expansion strategy (control, taxonomy, embedding)",
						Value:   "control",
					},
					&cli.StringFlag{
						Name:    "model",
						Aliases: []string{"m"},
						Usage:   "Path to the model store directory (embedding strategy)",
					},
					&cli.StringFlag{
						Name:  "taxonomy-url",
						Usage: "Taxonomy service base URL",
						Value: taxonomy.DefaultBaseURL,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum hits per expansion term",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// loadDataset reads a dataset file in the named format and returns its
// documents, schema, and load report.
func loadDataset(path, format string) ([]core.Document, core.Schema, *ingest.Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, core.Schema{}, nil, err
	}
	defer file.Close()

	switch format {
	case "catalog":
		docs, report, err := ingest.LoadCatalog(file)
		return docs, ingest.CatalogSchema(), report, err
	case "corpus":
		docs, report, err := ingest.LoadCorpus(file)
		return docs, ingest.CorpusSchema(), report, err
	case "listings":
		docs, report, err := ingest.LoadListings(file)
		return docs, ingest.ListingsSchema(), report, err
	default:
		return nil, core.Schema{}, nil, fmt.Errorf("unknown dataset format %q", format)
	}
}

func indexCommand(c *cli.Context) error {
	docs, schema, report, err := loadDataset(c.String("dataset"), c.String("format"))
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	for _, failure := range report.Failures {
		slog.Warn("rejected record", "record", failure.Record, "err", failure.Err)
	}

	catalog, err := widen.Create(schema, c.String("index"))
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer catalog.Close()

	if err := ingest.IndexDocuments(catalog.Index(), docs); err != nil {
		return fmt.Errorf("failed to index documents: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %s into %s\n", report, c.String("index"))
	return nil
}

func trainCommand(c *cli.Context) error {
	ctx := context.Background()

	docs, schema, report, err := loadDataset(c.String("dataset"), c.String("format"))
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	for _, failure := range report.Failures {
		slog.Warn("rejected record", "record", failure.Record, "err", failure.Err)
	}

	sentences := ingest.TrainingSentences(docs, trainableFields(schema))

	var model *embed.Model
	if c.Bool("remote") {
		model, err = buildRemoteModel(ctx, c, sentences)
	} else {
		model, err = embed.Train(ctx, sentences, embed.TrainConfig{
			Dim:      c.Int("dim"),
			Epochs:   c.Int("epochs"),
			MinCount: c.Int("min-count"),
			Workers:  c.Int("workers"),
			Phrases:  c.Bool("phrases"),
		})
	}
	if err != nil {
		return fmt.Errorf("failed to build model: %w", err)
	}

	store, err := badgerstore.Open(c.String("model"), false)
	if err != nil {
		return fmt.Errorf("failed to open model store: %w", err)
	}
	defer store.Close()

	if err := store.SaveModel(model); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Trained %d-term model (dim %d) into %s\n",
		model.Len(), model.Dim(), c.String("model"))
	return nil
}

// trainableFields picks every text field of the schema, indexed or stored.
func trainableFields(schema core.Schema) []string {
	var fields []string
	for _, f := range schema.Fields {
		if f.Kind != core.KindIdentifier {
			fields = append(fields, f.Name)
		}
	}
	return fields
}

// buildRemoteModel vectorizes the corpus vocabulary through an
// OpenAI-compatible embeddings API.
func buildRemoteModel(ctx context.Context, c *cli.Context, sentences [][]string) (*embed.Model, error) {
	minCount := c.Int("min-count")
	counts := make(map[string]int)
	for _, sentence := range sentences {
		for _, word := range sentence {
			counts[word]++
		}
	}
	var terms []string
	for word, count := range counts {
		if count >= minCount {
			terms = append(terms, word)
		}
	}

	vectorizer, err := remote.NewVectorizer(remote.NewConfig(
		remote.WithHost(c.String("embedding-host")),
		remote.WithModel(c.String("embedding-model")),
	))
	if err != nil {
		return nil, err
	}
	return vectorizer.BuildModel(ctx, terms)
}

func searchCommand(c *cli.Context) error {
	term := c.Args().First()
	if term == "" {
		return fmt.Errorf("search term is required")
	}

	rewriter, cleanup, err := buildRewriter(c)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := []widen.CatalogOption{widen.WithRewriter(rewriter)}
	if limit := c.Int("limit"); limit > 0 {
		opts = append(opts, widen.WithLimit(limit))
	}

	catalog, err := widen.Open(c.String("index"), opts...)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer catalog.Close()

	hits, err := catalog.Search(context.Background(), term)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for i, hit := range hits {
		fmt.Printf("%d.", i+1)
		for _, f := range catalog.Schema().StoredFields() {
			fmt.Printf(" %s=%q", f, hit[f])
		}
		fmt.Println()
	}
	fmt.Fprintf(os.Stderr, "%d results\n", len(hits))
	return nil
}

// buildRewriter assembles the requested expansion strategy. The returned
// cleanup releases any resources the strategy holds open.
func buildRewriter(c *cli.Context) (rewrite.Rewriter, func(), error) {
	noop := func() {}

	switch c.String("rewriter") {
	case "control":
		return rewrite.Control{}, noop, nil

	case "taxonomy":
		client, err := taxonomy.NewClient(taxonomy.Config{
			BaseURL: c.String("taxonomy-url"),
		})
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create taxonomy client: %w", err)
		}
		rewriter, err := rewrite.NewTaxonomy(client)
		if err != nil {
			return nil, noop, err
		}
		return rewriter, noop, nil

	case "embedding":
		modelPath := c.String("model")
		if modelPath == "" {
			return nil, noop, fmt.Errorf("embedding strategy requires --model")
		}
		store, err := badgerstore.Open(modelPath, false)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open model store: %w", err)
		}
		model, err := store.LoadModel()
		if err != nil {
			store.Close()
			return nil, noop, fmt.Errorf("failed to load model: %w", err)
		}
		rewriter, err := rewrite.NewEmbedding(model)
		if err != nil {
			store.Close()
			return nil, noop, err
		}
		return rewriter, func() { store.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown rewriter %q: must be one of control, taxonomy, embedding", c.String("rewriter"))
	}
}
