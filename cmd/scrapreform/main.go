// Copyright 2026 Poiesic Systems
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "scrapreform",
		Usage: "Keyword relevance filtering and legal analysis over French sources",
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
				Name:      "keywords",
				Usage:     "Show the keywords and variants extracted from a query",
				ArgsUsage: "QUERY...",
				Action:    keywordsCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "indicators",
						Usage: "Also print the weighted legal indicator table",
					},
				},
			},
			{
				Name:      "filter",
				Usage:     "Rank the relevant paragraphs of text files for a query",
				ArgsUsage: "FILE...",
				Action:    filterCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Query to filter for",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "min-length",
						Usage: "Minimum paragraph length in characters",
						Value: 50,
					},
					&cli.IntFlag{
						Name:  "max-paragraphs",
						Usage: "Maximum paragraphs kept per file",
						Value: 15,
					},
				},
			},
			{
				Name:  "sites",
				Usage: "Manage the site catalog",
				Subcommands: []*cli.Command{
					{
						Name:      "import",
						Usage:     "Add or replace sites from a YAML manifest",
						ArgsUsage: "MANIFEST.yaml",
						Action:    sitesImportCommand,
						Flags:     []cli.Flag{dbFlag()},
					},
					{
						Name:   "list",
						Usage:  "List catalog sites",
						Action: sitesListCommand,
						Flags: []cli.Flag{
							dbFlag(),
							&cli.StringFlag{
								Name:    "category",
								Aliases: []string{"c"},
								Usage:   "Only list sites of this category",
							},
						},
					},
					{
						Name:      "remove",
						Usage:     "Remove sites by URL",
						ArgsUsage: "URL...",
						Action:    sitesRemoveCommand,
						Flags:     []cli.Flag{dbFlag()},
					},
				},
			},
			{
				Name:   "run",
				Usage:  "Run a scrape request over already-extracted texts",
				Action: runCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:     "request",
						Aliases:  []string{"r"},
						Usage:    "Path to the JSON request",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "text-dir",
						Usage: "Directory holding source texts (defaults to the request's directory)",
					},
					&cli.BoolFlag{
						Name:  "no-ai",
						Usage: "Return raw content even if the request asks for AI",
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Usage: "Chat completion service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "ai-model",
						Usage: "Chat model name",
						Value: "qwen2.5:7b",
					},
					&cli.StringFlag{
						Name:    "ai-token",
						Usage:   "API token",
						Value:   "none",
						EnvVars: []string{"OPENAI_API_KEY"},
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts for the analysis",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 2 * time.Second,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of sources filtered concurrently",
					},
					&cli.BoolFlag{
						Name:  "progress",
						Usage: "Report filtering progress on stderr",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Count the catalog sites and archived reports",
				Action: statsCommand,
				Flags:  []cli.Flag{dbFlag()},
			},
			{
				Name:  "reports",
				Usage: "Browse archived reports",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List the most recent reports",
						Action: reportsListCommand,
						Flags: []cli.Flag{
							dbFlag(),
							&cli.IntFlag{
								Name:    "limit",
								Aliases: []string{"n"},
								Usage:   "Number of reports to list",
								Value:   10,
							},
						},
					},
					{
						Name:      "show",
						Usage:     "Print one report",
						ArgsUsage: "ID",
						Action:    reportsShowCommand,
						Flags:     []cli.Flag{dbFlag()},
					},
				},
			},
		},
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
