package badger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/scrapreform/core"
	"github.com/poiesic/scrapreform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")
	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenBackend_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	backend, err := OpenBackend(file, false)
	assert.Error(t, err)
	assert.Nil(t, backend)
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	assert.False(t, backend.IsClosed())
	require.NoError(t, backend.Close())
	assert.True(t, backend.IsClosed())

	err = backend.WithTx(func(tx *badger.Txn) error { return nil }, false)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestWithTransaction(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	t.Run("successful transaction", func(t *testing.T) {
		err := backend.WithTransaction(ctx, func(ctx context.Context) error {
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("failed transaction", func(t *testing.T) {
		testErr := assert.AnError
		err := backend.WithTransaction(ctx, func(ctx context.Context) error {
			return testErr
		})
		assert.Equal(t, testErr, err)
	})
}

func TestReportIDs(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	seq, err := backend.reportIDs()
	require.NoError(t, err)
	require.NotNil(t, seq)

	id1, err := seq.Next()
	require.NoError(t, err)
	id2, err := seq.Next()
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	require.NoError(t, seq.Release())
	require.NoError(t, backend.Close())

	_, err = backend.reportIDs()
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestOpenBackend_EmptyDir(t *testing.T) {
	backend, err := OpenBackend("", false)
	assert.Error(t, err)
	assert.Nil(t, backend)
}

func TestBackendStats(t *testing.T) {
	siteRepo, reportRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { reportRepo.Close(); siteRepo.Close(); backend.Close() }()

	ctx := context.Background()
	stats, err := backend.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	_, err = siteRepo.AddSites(ctx,
		&core.SiteEntry{Category: "Législation", SiteName: "Légifrance", URL: "https://www.legifrance.gouv.fr"},
		&core.SiteEntry{Category: "Doctrine", SiteName: "Dalloz", URL: "https://www.dalloz.fr"},
	)
	require.NoError(t, err)
	for _, q := range []string{"bail", "vente", "dopage"} {
		_, err = reportRepo.AddReport(ctx, &core.Report{Query: q})
		require.NoError(t, err)
	}

	// Category and date index keys are not counted.
	stats, err = backend.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Sites: 2, Reports: 3}, stats)
}

func TestReadValue_Missing(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	err = backend.WithTx(func(tx *badger.Txn) error {
		site, err := readValue(tx, makeSiteKey(99), storage.UnmarshalSiteEntry)
		assert.Nil(t, site)
		return err
	}, false)
	require.NoError(t, err)
}

func TestKeys(t *testing.T) {
	t.Run("site key", func(t *testing.T) {
		assert.Equal(t, []byte("siterec:42"), makeSiteKey(42))
	})

	t.Run("category prefix is terminated", func(t *testing.T) {
		short := makePartialSiteCategoryKey("Doctrine")
		long := makeSiteCategoryKey("Doctrine sportive", 1)
		assert.False(t, bytes.HasPrefix(long, short))
		assert.True(t, bytes.HasPrefix(makeSiteCategoryKey("Doctrine", 1), short))
	})

	t.Run("report date keys sort chronologically", func(t *testing.T) {
		now := time.Now().UTC()
		earlier := makeReportDateKey(now.Add(-time.Hour), 9)
		later := makeReportDateKey(now, 1)
		assert.Equal(t, -1, bytes.Compare(earlier, later))
	})

	t.Run("report key", func(t *testing.T) {
		assert.Equal(t, []byte("reprec:7"), makeReportKey(core.ID(7)))
	})
}
