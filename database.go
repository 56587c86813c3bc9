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


package scrapreform

import (
	"context"
	"log/slog"

	"github.com/poiesic/scrapreform/ai"
	"github.com/poiesic/scrapreform/ai/openai"
	"github.com/poiesic/scrapreform/scrape"
	"github.com/poiesic/scrapreform/storage"
	"github.com/poiesic/scrapreform/storage/badger"
)

type Database struct {
	backend    *badger.Backend
	siteRepo   storage.SiteRepository
	reportRepo storage.ReportRepository
	provider   ai.AIProvider
	logger     *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	noAI     bool
	inMemory bool
}

// WithAIConfig sets the configuration of the OpenAI-compatible summarizer.
func WithAIConfig(cfg *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = cfg
	}
}

// WithAIProvider uses an already constructed provider. The database closes it.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithoutAI opens the database with no summarizer. Pipelines created from it
// only serve requests with UseAI unset.
func WithoutAI() DatabaseOption {
	return func(o *databaseOptions) {
		o.noAI = true
	}
}

// WithInMemory keeps all data in memory. The file path is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	siteRepo, err := badger.NewSiteRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	reportRepo, err := badger.NewReportRepository(backend)
	if err != nil {
		siteRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil && !options.noAI {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			reportRepo.Close()
			siteRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:    backend,
		siteRepo:   siteRepo,
		reportRepo: reportRepo,
		provider:   provider,
		logger:     slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if db.provider != nil {
		if err := db.provider.Close(); err != nil {
			db.logger.Error("error closing AI provider", "err", err)
		}
	}

	if err := db.reportRepo.Close(); err != nil {
		db.logger.Error("error closing report repository", "err", err)
		return err
	}
	if err := db.siteRepo.Close(); err != nil {
		db.logger.Error("error closing site repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) SiteRepository() storage.SiteRepository {
	return db.siteRepo
}

func (db *Database) ReportRepository() storage.ReportRepository {
	return db.reportRepo
}

// Stats counts the sites in the catalog and the archived reports.
func (db *Database) Stats(ctx context.Context) (badger.Stats, error) {
	return db.backend.Stats(ctx)
}

// Provider returns the AI provider, or nil when the database was opened WithoutAI.
func (db *Database) Provider() ai.AIProvider {
	return db.provider
}

// NewPipeline creates a scrape pipeline that archives its reports in this
// database and summarizes with its provider. opts are applied last.
func (db *Database) NewPipeline(opts ...scrape.Option) (*scrape.Pipeline, error) {
	base := []scrape.Option{scrape.WithReportRepository(db.reportRepo)}
	if db.provider != nil {
		base = append(base, scrape.WithSummarizer(db.provider.Summarizer()))
	}
	return scrape.NewPipeline(append(base, opts...)...)
}
