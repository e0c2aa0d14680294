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
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/melodex"
	"github.com/poiesic/melodex/ai"
	"github.com/poiesic/melodex/ai/openai"
	"github.com/poiesic/melodex/blob/s3"
	"github.com/poiesic/melodex/reembed"
	"github.com/poiesic/melodex/search"
	"github.com/poiesic/melodex/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "melodex",
		Usage: "Music ingestion and similarity search over track analyses",
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
				Name:      "ingest",
				Usage:     "Ingest one or more tracks by source URL",
				ArgsUsage: "URL [URL...]",
				Action:    ingestCommand,
				Flags: append(libraryFlags(),
					&cli.StringFlag{
						Name:  "analysis-host",
						Usage: "Track analysis service host URL",
						Value: "http://localhost:9200",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search the corpus with a natural language query",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: append(libraryFlags(),
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.IntFlag{
						Name:    "max-hits",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results",
						Value:   search.DefaultTopK,
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all media records with new embeddings",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of batches embedded concurrently",
						Value: 2,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// libraryFlags are shared by the commands that open a full library: database
// location plus the blob store, which is a local directory by default and S3
// when a bucket is given.
func libraryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "blob-dir",
			Usage: "Directory for the filesystem blob store (default: <db>-blobs)",
		},
		&cli.StringFlag{
			Name:  "s3-bucket",
			Usage: "S3 bucket for blob storage (switches the blob store to S3)",
		},
		&cli.StringFlag{
			Name:  "s3-endpoint",
			Usage: "Custom S3 endpoint URL (for MinIO and compatible stores)",
		},
		&cli.StringFlag{
			Name:  "s3-region",
			Usage: "S3 region",
			Value: "us-east-1",
		},
		&cli.StringFlag{
			Name:    "s3-user",
			Usage:   "S3 access key ID",
			EnvVars: []string{"MELODEX_S3_USER"},
		},
		&cli.StringFlag{
			Name:    "s3-password",
			Usage:   "S3 secret access key",
			EnvVars: []string{"MELODEX_S3_PASSWORD"},
		},
	}
}

func openLibrary(c *cli.Context) (*melodex.Library, error) {
	var aiOpts []ai.ConfigOption
	if host := c.String("analysis-host"); host != "" {
		aiOpts = append(aiOpts, ai.WithAnalysisHost(host))
	}
	if host := c.String("embedding-host"); host != "" {
		aiOpts = append(aiOpts, ai.WithEmbeddingHost(host))
	}
	if model := c.String("embedding-model"); model != "" {
		aiOpts = append(aiOpts, ai.WithEmbeddingModel(model))
	}
	aiConfig := ai.NewConfig(aiOpts...)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []melodex.LibraryOption{melodex.WithAIConfig(aiConfig)}

	if bucket := c.String("s3-bucket"); bucket != "" {
		store, err := s3.NewStore(s3.Config{
			HostEndpointUrl: c.String("s3-endpoint"),
			Region:          c.String("s3-region"),
			Bucket:          bucket,
			Username:        c.String("s3-user"),
			Password:        c.String("s3-password"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 blob store: %w", err)
		}
		opts = append(opts, melodex.WithBlobStore(store))
	} else if root := c.String("blob-dir"); root != "" {
		opts = append(opts, melodex.WithBlobRoot(root))
	}

	return melodex.NewLibrary(c.String("db"), opts...)
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	urls := c.Args().Slice()
	if len(urls) == 0 {
		return fmt.Errorf("at least one source URL is required")
	}

	library, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer library.Close()

	pipeline, err := library.NewIngestionPipeline()
	if err != nil {
		return err
	}

	var failures int
	for _, url := range urls {
		record, err := pipeline.Ingest(ctx, url)
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "FAILED %s: %v\n", url, err)
			continue
		}
		fmt.Printf("%s -> id=%d blob=%s\n", url, record.Id, record.BlobId)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d tracks failed to ingest", failures, len(urls))
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	library, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer library.Close()

	searcher, err := library.NewSearcher()
	if err != nil {
		return err
	}

	results, err := searcher.Search(ctx, query, c.Int("max-hits"))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for i, result := range results {
		fmt.Printf("%2d. %.4f  %s\n", i+1, result.Score, result.Record.SourceKey)
		if result.Record.Summary != "" {
			fmt.Printf("    %s\n", result.Record.Summary)
		}
	}
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewMediaRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		PoolSize:       c.Int("workers"),
	}

	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
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
