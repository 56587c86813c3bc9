package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/poiesic/scrapreform"
	"github.com/poiesic/scrapreform/ai"
	"github.com/poiesic/scrapreform/core"
	"github.com/poiesic/scrapreform/lexicon"
	"github.com/poiesic/scrapreform/relevance"
	"github.com/poiesic/scrapreform/scrape"
	"github.com/urfave/cli/v2"
)

// openDatabase opens the --db database. The summarizer is only configured when withAI is set.
func openDatabase(c *cli.Context, withAI bool) (*scrapreform.Database, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	opts := []scrapreform.DatabaseOption{scrapreform.WithoutAI()}
	if withAI {
		cfg := ai.NewConfig(
			ai.WithHost(c.String("ai-host")),
			ai.WithModel(c.String("ai-model")),
			ai.WithToken(c.String("ai-token")),
			ai.WithMaxRetries(c.Int("max-retries")),
			ai.WithRetryDelay(c.Duration("retry-delay")),
		)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid AI configuration: %w", err)
		}
		opts = []scrapreform.DatabaseOption{scrapreform.WithAIConfig(cfg)}
	}

	db, err := scrapreform.NewDatabase(dbPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func keywordsCommand(c *cli.Context) error {
	if c.Bool("indicators") {
		w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "INDICATOR\tWEIGHT\tPATTERN")
		for _, ind := range relevance.Indicators() {
			fmt.Fprintf(w, "%s\t%d\t%s\n", ind.Name, ind.Weight, ind.Pattern)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if c.NArg() == 0 {
			return nil
		}
	}

	query := strings.Join(c.Args().Slice(), " ")
	kw := relevance.ExtractKeywords(query)
	if kw.Empty() {
		fmt.Fprintln(c.App.Writer, "No keywords")
		return nil
	}

	fmt.Fprintf(c.App.Writer, "Keywords: %s\n", strings.Join(kw.PrimaryKeywords, ", "))
	fmt.Fprintf(c.App.Writer, "Minimum matches: %d\n", kw.MinRequiredMatches)
	for _, k := range kw.PrimaryKeywords {
		fmt.Fprintf(c.App.Writer, "  %s: %s\n", k, strings.Join(lexicon.Variants(k), ", "))
		if syn := lexicon.Synonyms(k); len(syn) > 0 {
			fmt.Fprintf(c.App.Writer, "    synonyms: %s\n", strings.Join(syn, ", "))
		}
	}
	return nil
}

func filterCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected at least one file")
	}

	filter, err := relevance.NewFilter(
		relevance.WithMinParagraphLength(c.Int("min-length")),
		relevance.WithMaxParagraphs(c.Int("max-paragraphs")),
	)
	if err != nil {
		return err
	}

	kw := relevance.ExtractKeywords(c.String("query"))
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		result := filter.FindRelevantContent(string(data), kw)
		fmt.Fprintf(c.App.Writer, "== %s (score %.1f, keywords: %s)\n",
			path, result.RelevanceScore, strings.Join(result.MatchedKeywords, ", "))
		for i, para := range result.Matches {
			fmt.Fprintf(c.App.Writer, "[%d] %s\n", i+1, para)
		}
	}
	return nil
}

func runCommand(c *cli.Context) error {
	ctx := context.Background()

	requestPath := c.String("request")
	data, err := os.ReadFile(requestPath)
	if err != nil {
		return err
	}
	textDir := c.String("text-dir")
	if textDir == "" {
		textDir = filepath.Dir(requestPath)
	}

	db, err := openDatabase(c, !c.Bool("no-ai"))
	if err != nil {
		return err
	}
	defer db.Close()

	req, err := parseRequest(ctx, data, textDir, db.SiteRepository())
	if err != nil {
		return err
	}
	if c.Bool("no-ai") {
		req.UseAI = false
	}

	var opts []scrape.Option
	if n := c.Int("pool-size"); n > 0 {
		opts = append(opts, scrape.WithPoolSize(n))
	}
	if c.Bool("progress") {
		opts = append(opts, scrape.WithProgress(os.Stderr))
	}
	pipeline, err := db.NewPipeline(opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report, err := pipeline.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	fmt.Fprintln(c.App.Writer, report.Answer)
	if report.Id != 0 {
		fmt.Fprintf(os.Stderr, "Report %d (request %s)\n", report.Id, report.RequestID)
	}
	return nil
}

func reportsListCommand(c *cli.Context) error {
	db, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	reports, err := db.ReportRepository().ListRecentReports(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSOURCES\tQUERY")
	for _, r := range reports {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", r.Id, r.CreatedAt.Format(time.DateTime), len(r.Matches), r.Query)
	}
	return w.Flush()
}

func statsCommand(c *cli.Context) error {
	db, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.Stats(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Sites: %d\nReports: %d\n", stats.Sites, stats.Reports)
	return nil
}

func reportsShowCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one report ID")
	}
	id, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid report ID %q: %w", c.Args().First(), err)
	}

	db, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := db.ReportRepository().GetReport(context.Background(), core.ID(id))
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Report %d (request %s)\n", report.Id, report.RequestID)
	fmt.Fprintf(out, "Created: %s\n", report.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Query: %s\n", report.Query)
	fmt.Fprintf(out, "Keywords: %s\n", strings.Join(report.Keywords, ", "))
	for _, m := range report.Matches {
		fmt.Fprintf(out, "  %s [%s] %s (score %.1f, %d excerpts)\n",
			m.SiteName, m.Category, m.URL, m.RelevanceScore, len(m.RelevantParagraphs))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.Answer)
	return nil
}
