package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/scrapreform/core"
	"github.com/poiesic/scrapreform/storage"
)

// ReportRepository implements storage.ReportRepository for BadgerDB.
type ReportRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(backend *Backend) (*ReportRepository, error) {
	idSeq, err := backend.reportIDs()
	if err != nil {
		return nil, err
	}

	return &ReportRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ReportRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ReportRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddReport stores a report under a new sequential ID.
func (r *ReportRepository) AddReport(ctx context.Context, report *core.Report) (*core.Report, error) {
	if err := core.ValidateReport(report); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrInvalidRecord, err)
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = r.idSeq.Next()
			if err != nil {
				return err
			}
		}
		report.Id = core.ID(nextID)

		if report.CreatedAt.IsZero() {
			report.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
		}

		// Store primary record
		if err := tx.Set(makeReportKey(report.Id), storage.MarshalReport(report)); err != nil {
			return err
		}

		// Update date index
		dateKey := makeReportDateKey(report.CreatedAt, report.Id)
		if err := tx.Set(dateKey, storage.MarshalID(report.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// GetReport retrieves a single report by ID.
func (r *ReportRepository) GetReport(ctx context.Context, id core.ID) (*core.Report, error) {
	var result *core.Report
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readValue(tx, makeReportKey(id), storage.UnmarshalReport)
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("%w: id %d", storage.ErrReportNotFound, id)
		}
		return nil
	}, false)
	return result, err
}

// ListRecentReports retrieves the N most recent reports, most recent first.
func (r *ReportRepository) ListRecentReports(ctx context.Context, limit int) ([]*core.Report, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", storage.ErrInvalidQuery, limit)
	}

	var results []*core.Report
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent reports first
		prefix := []byte(reportDatePrefix + ":")
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the last possible key with this prefix
		startKey := append(prefix[:len(prefix):len(prefix)], 0xff)

		for iter.Seek(startKey); iter.Valid() && len(results) < limit; iter.Next() {
			var reportID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				reportID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			report, err := readValue(tx, makeReportKey(reportID), storage.UnmarshalReport)
			if err != nil {
				return err
			}
			if report != nil {
				results = append(results, report)
			}
		}
		return nil
	}, false)

	return results, err
}
