package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/scrapreform/ai"
	"github.com/poiesic/scrapreform/core"
	"github.com/poiesic/scrapreform/relevance"
	"github.com/poiesic/scrapreform/storage"
)

// Pipeline orchestrates one scrape request over a set of source documents.
// Sources are filtered concurrently on a worker pool.
type Pipeline struct {
	pool       *ants.Pool
	filter     *relevance.Filter
	summarizer ai.Summarizer
	reports    storage.ReportRepository
	progress   io.Writer
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent filtering.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		if p.pool != nil {
			p.pool.Release()
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithFilter sets the relevance filter applied to each source.
// Default is a filter with the default paragraph floor and cap.
func WithFilter(filter *relevance.Filter) Option {
	return func(p *Pipeline) error {
		if filter == nil {
			return ErrFilterRequired
		}
		p.filter = filter
		return nil
	}
}

// WithSummarizer sets the service used for requests with UseAI set.
func WithSummarizer(summarizer ai.Summarizer) Option {
	return func(p *Pipeline) error {
		p.summarizer = summarizer
		return nil
	}
}

// WithReportRepository archives every report with a non-empty query.
func WithReportRepository(reports storage.ReportRepository) Option {
	return func(p *Pipeline) error {
		p.reports = reports
		return nil
	}
}

// WithProgress reports filtering progress to w.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) error {
		p.progress = w
		return nil
	}
}

// NewPipeline creates a new scrape pipeline.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		pool:   pool,
		logger: slog.Default().With("component", "scrape-pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	if p.filter == nil {
		filter, err := relevance.NewFilter(relevance.WithLogger(p.logger))
		if err != nil {
			p.Release()
			return nil, err
		}
		p.filter = filter
	}

	return p, nil
}

// Request is one scrape request.
type Request struct {
	// Query is the user's question. It may be empty, in which case every
	// source contributes raw text.
	Query string

	// Documents are the extracted texts of the selected sites.
	Documents []core.SourceDocument

	// UseAI enables keyword filtering and the summarizer. When false the
	// answer is the raw text of every source.
	UseAI bool
}

// Run executes a request and returns its report.
// Sources without relevant content are skipped. When nothing relevant is found
// the answer is NoResultMessage and the summarizer is not called.
func (p *Pipeline) Run(ctx context.Context, req Request) (*core.Report, error) {
	if len(req.Documents) == 0 {
		return nil, ErrNoDocuments
	}
	if req.UseAI && p.summarizer == nil {
		return nil, ai.ErrSummarizerRequired
	}

	kw := relevance.ExtractKeywords(req.Query)
	report := &core.Report{
		RequestID: uuid.NewString(),
		Query:     req.Query,
		Keywords:  kw.PrimaryKeywords,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	logger := p.logger.With("request", report.RequestID)
	logger.Info("running request", "sources", len(req.Documents), "keywords", kw.PrimaryKeywords, "ai", req.UseAI)

	if !kw.Empty() && req.UseAI {
		matches, err := p.filterDocuments(ctx, logger, req.Documents, kw)
		if err != nil {
			return nil, err
		}
		report.Matches = matches
		report.Content = AssembleMatches(matches)
	} else {
		var sb strings.Builder
		for _, doc := range req.Documents {
			sb.WriteString(AssembleRaw(doc.Site, doc.Text))
		}
		report.Content = sb.String()
	}

	switch {
	case strings.TrimSpace(report.Content) == "":
		logger.Info("no relevant content found")
		report.Answer = NoResultMessage(req.Query, kw.PrimaryKeywords)
	case !req.UseAI:
		report.Answer = report.Content
	default:
		logger.Debug("calling summarizer", "sources", len(report.Matches))
		answer, err := p.summarizer.Summarize(ctx, ai.SummaryRequest{
			Query:    req.Query,
			Keywords: kw.PrimaryKeywords,
			Content:  report.Content,
		})
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
		report.Answer = answer
	}

	if p.reports != nil && strings.TrimSpace(req.Query) != "" {
		stored, err := p.reports.AddReport(ctx, report)
		if err != nil {
			return nil, err
		}
		report = stored
	}

	return report, nil
}

// filterDocuments runs the relevance filter over every document on the pool.
// The returned matches keep the order of docs.
func (p *Pipeline) filterDocuments(ctx context.Context, logger *slog.Logger, docs []core.SourceDocument, kw *relevance.Keywords) ([]core.RelevantMatch, error) {
	results := make([]*core.RelevantMatch, len(docs))

	var tracker *ProgressTracker
	if p.progress != nil {
		tracker = NewProgressTracker(p.progress, len(docs), 1)
		tracker.Start()
	}

	var wg sync.WaitGroup
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			results[i] = p.filterDocument(logger, doc, kw)
			if tracker != nil {
				kept := 0
				if results[i] != nil {
					kept = len(results[i].RelevantParagraphs)
				}
				tracker.SourceDone(kept)
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	if tracker != nil {
		tracker.Finish()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches := make([]core.RelevantMatch, 0, len(docs))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}
	logger.Debug("filtered sources", "sources", len(docs), "relevant", len(matches))
	return matches, nil
}

func (p *Pipeline) filterDocument(logger *slog.Logger, doc core.SourceDocument, kw *relevance.Keywords) *core.RelevantMatch {
	result := p.filter.FindRelevantContent(doc.Text, kw)
	if len(result.Matches) == 0 {
		logger.Debug("no relevant content", "site", doc.Site.SiteName)
		return nil
	}

	logger.Debug("found relevant paragraphs",
		"site", doc.Site.SiteName,
		"paragraphs", len(result.Matches),
		"keywords", result.MatchedKeywords)

	return &core.RelevantMatch{
		SiteName:           doc.Site.SiteName,
		Category:           doc.Site.Category,
		URL:                NormalizeURL(doc.Site.URL),
		MatchingKeywords:   result.MatchedKeywords,
		RelevantParagraphs: result.Matches,
		RelevanceScore:     result.RelevanceScore,
	}
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
