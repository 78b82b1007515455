// Copyright 2025 Skillsift Authors
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

	"github.com/skillsift/skillsift"
	"github.com/skillsift/skillsift/ai"
	"github.com/skillsift/skillsift/ingestion"
	"github.com/skillsift/skillsift/server"
)

func main() {
	app := &cli.App{
		Name:  "skillsift",
		Usage: "Semantic search service over an assessment catalog",
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
				Name:   "serve",
				Usage:  "Start the HTTP search API",
				Action: serveCommand,
				Flags: append(catalogFlags(),
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Address to listen on",
						Value: ":8080",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for ingestion normalization",
						Value: 4,
					},
				),
			},
			{
				Name:      "ingest",
				Usage:     "Ingest a scraped catalog file",
				ArgsUsage: "<catalog.json>",
				Action:    ingestCommand,
				Flags: append(catalogFlags(),
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for normalization",
						Value: 4,
					},
				),
			},
			{
				Name:      "query",
				Usage:     "Run one search query against the catalog",
				ArgsUsage: "<query text>",
				Action:    queryCommand,
				Flags: append(catalogFlags(),
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL for both models",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "extractor-model",
			Usage: "Metadata extraction model name",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API token for the model service",
			Value:   "none",
			EnvVars: []string{"SKILLSIFT_API_TOKEN"},
		},
	}
}

func openCatalog(c *cli.Context) (*skillsift.Catalog, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithExtractorModel(c.String("extractor-model")),
		ai.WithToken(c.String("token")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	catalog, err := skillsift.NewCatalog(c.String("db"), skillsift.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return catalog, nil
}

func serveCommand(c *cli.Context) error {
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	searcher, err := catalog.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	pipeline, err := catalog.NewIngestionPipeline(
		ingestion.WithPoolSize(c.Int("pool-size")),
	)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	handlers := server.NewHandlers(searcher, pipeline, catalog.Repository(), slog.Default())
	srv := server.NewServer(handlers, slog.Default())

	return srv.Run(c.String("listen"))
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one catalog file argument")
	}
	path := c.Args().First()

	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	pipeline, err := catalog.NewIngestionPipeline(
		ingestion.WithPoolSize(c.Int("pool-size")),
	)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	stored, err := pipeline.IngestFile(context.Background(), path)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Stored %d assessments from %s\n", stored, path)
	return nil
}

func queryCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected a query string")
	}
	query := strings.Join(c.Args().Slice(), " ")

	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	searcher, err := catalog.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	results, err := searcher.Search(context.Background(), query, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s [%0.3f]\n   %s\n   levels=%v languages=%v duration=%dm\n",
			i+1, hit.Title, hit.SimilarityScore, hit.URL,
			hit.JobLevels, hit.Languages, hit.DurationMinutes)
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
