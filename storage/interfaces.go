package storage

import (
	"context"

	"github.com/poiesic/scrapreform/core"
)

type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// SiteRepository is the catalog of sources a scrape request can draw from.
type SiteRepository interface {
	Repository
	// AddSites adds or replaces sites.
	// Site IDs are content IDs derived from the URL, so adding a site twice
	// overwrites the first entry and keeps its InsertedAt timestamp.
	// Returns ErrInvalidRecord wrapping the validation failure for bad entries.
	AddSites(ctx context.Context, sites ...*core.SiteEntry) ([]*core.SiteEntry, error)

	// GetSite retrieves a single site by ID.
	// Returns ErrNotFound if the site doesn't exist.
	GetSite(ctx context.Context, id core.ID) (*core.SiteEntry, error)

	// GetSiteByURL retrieves a site by its URL.
	// Returns ErrNotFound if the site doesn't exist.
	GetSiteByURL(ctx context.Context, url string) (*core.SiteEntry, error)

	// ListSites returns every site, ordered by category then site name.
	ListSites(ctx context.Context) ([]*core.SiteEntry, error)

	// ListSitesByCategory returns the sites of one category, ordered by site name.
	ListSitesByCategory(ctx context.Context, category string) ([]*core.SiteEntry, error)

	// DeleteSites removes sites by their IDs.
	// Returns ErrNotFound if any site doesn't exist.
	DeleteSites(ctx context.Context, ids ...core.ID) error
}

// ReportRepository archives the outcome of scrape requests.
type ReportRepository interface {
	Repository
	// AddReport stores a report.
	// Generates a new ID from sequence and sets CreatedAt if not already set.
	// Returns the report with its ID populated.
	AddReport(ctx context.Context, report *core.Report) (*core.Report, error)

	// GetReport retrieves a single report by ID.
	// Returns ErrNotFound if the report doesn't exist.
	GetReport(ctx context.Context, id core.ID) (*core.Report, error)

	// ListRecentReports retrieves the N most recent reports, most recent first.
	ListRecentReports(ctx context.Context, limit int) ([]*core.Report, error)
}
