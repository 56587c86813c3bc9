package badger

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/scrapreform/core"
	"github.com/poiesic/scrapreform/storage"
)

// SiteRepository implements storage.SiteRepository for BadgerDB.
type SiteRepository struct {
	backend *Backend
}

var _ storage.SiteRepository = (*SiteRepository)(nil)

// NewSiteRepository creates a new SiteRepository.
func NewSiteRepository(backend *Backend) (*SiteRepository, error) {
	return &SiteRepository{
		backend: backend,
	}, nil
}

// Close releases resources. SiteRepository has no resources to release.
func (r *SiteRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SiteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddSites adds or replaces sites.
func (r *SiteRepository) AddSites(ctx context.Context, sites ...*core.SiteEntry) ([]*core.SiteEntry, error) {
	for _, site := range sites {
		if err := core.ValidateSiteEntry(site); err != nil {
			return nil, fmt.Errorf("%w: %w", storage.ErrInvalidRecord, err)
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, site := range sites {
			site.Id = core.SiteID(site.URL)
			key := makeSiteKey(site.Id)

			old, err := readValue(tx, key, storage.UnmarshalSiteEntry)
			if err != nil {
				return err
			}
			if old != nil {
				site.InsertedAt = old.InsertedAt
				if old.Category != site.Category {
					if err := tx.Delete(makeSiteCategoryKey(old.Category, old.Id)); err != nil {
						return err
					}
				}
			} else {
				site.InsertedAt = now
			}
			site.UpdatedAt = now

			// Store primary record
			if err := tx.Set(key, storage.MarshalSiteEntry(site)); err != nil {
				return err
			}

			// Store category index
			if err := tx.Set(makeSiteCategoryKey(site.Category, site.Id), storage.MarshalID(site.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return sites, nil
}

// GetSite retrieves a single site by ID.
func (r *SiteRepository) GetSite(ctx context.Context, id core.ID) (*core.SiteEntry, error) {
	var result *core.SiteEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readValue(tx, makeSiteKey(id), storage.UnmarshalSiteEntry)
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("%w: id %d", storage.ErrSiteNotFound, id)
		}
		return nil
	}, false)
	return result, err
}

// GetSiteByURL retrieves a site by its URL.
func (r *SiteRepository) GetSiteByURL(ctx context.Context, url string) (*core.SiteEntry, error) {
	return r.GetSite(ctx, core.SiteID(url))
}

// ListSites returns every site, ordered by category then site name.
func (r *SiteRepository) ListSites(ctx context.Context) ([]*core.SiteEntry, error) {
	var results []*core.SiteEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(siteRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var site *core.SiteEntry
			err := iter.Item().Value(func(val []byte) error {
				var err error
				site, err = storage.UnmarshalSiteEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, site)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sortSites(results)
	return results, nil
}

// ListSitesByCategory returns the sites of one category, ordered by site name.
func (r *SiteRepository) ListSitesByCategory(ctx context.Context, category string) ([]*core.SiteEntry, error) {
	var results []*core.SiteEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialSiteCategoryKey(category)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var siteID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				siteID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			site, err := readValue(tx, makeSiteKey(siteID), storage.UnmarshalSiteEntry)
			if err != nil {
				return err
			}
			if site != nil {
				results = append(results, site)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sortSites(results)
	return results, nil
}

// DeleteSites removes sites by their IDs.
func (r *SiteRepository) DeleteSites(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSiteKey(id)

			site, err := readValue(tx, key, storage.UnmarshalSiteEntry)
			if err != nil {
				return err
			}
			if site == nil {
				return fmt.Errorf("%w: id %d", storage.ErrSiteNotFound, id)
			}

			if err := tx.Delete(makeSiteCategoryKey(site.Category, site.Id)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

func sortSites(sites []*core.SiteEntry) {
	slices.SortFunc(sites, func(a, b *core.SiteEntry) int {
		return cmp.Or(
			cmp.Compare(a.Category, b.Category),
			cmp.Compare(a.SiteName, b.SiteName),
			cmp.Compare(a.URL, b.URL),
		)
	})
}
