package badger

import (
	"context"
	"testing"

	"github.com/poiesic/scrapreform/core"
	"github.com/poiesic/scrapreform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSites() []*core.SiteEntry {
	return []*core.SiteEntry{
		{Category: "Législation", SiteName: "Légifrance", URL: "https://www.legifrance.gouv.fr"},
		{Category: "Jurisprudence", SiteName: "Cour de cassation", URL: "https://www.courdecassation.fr"},
		{Category: "Jurisprudence", SiteName: "Conseil d'État", URL: "https://www.conseil-etat.fr"},
		{Category: "Doctrine", SiteName: "Dalloz actualité", URL: "www.dalloz-actualite.fr"},
	}
}

func TestSiteRepository_AddAndGet(t *testing.T) {
	siteRepo, reportRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		reportRepo.Close()
		siteRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	added, err := siteRepo.AddSites(ctx, newTestSites()...)
	require.NoError(t, err)
	require.Len(t, added, 4)

	for _, site := range added {
		assert.Equal(t, core.SiteID(site.URL), site.Id)
		assert.False(t, site.InsertedAt.IsZero())
		assert.Equal(t, site.InsertedAt, site.UpdatedAt)
	}

	got, err := siteRepo.GetSite(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "Légifrance", got.SiteName)
	assert.Equal(t, "Législation", got.Category)

	byURL, err := siteRepo.GetSiteByURL(ctx, "www.dalloz-actualite.fr")
	require.NoError(t, err)
	assert.Equal(t, "Dalloz actualité", byURL.SiteName)
}

func TestSiteRepository_GetMissing(t *testing.T) {
	siteRepo, reportRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { reportRepo.Close(); siteRepo.Close(); backend.Close() }()

	_, err = siteRepo.GetSite(context.Background(), 12345)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, err, storage.ErrSiteNotFound)
	assert.NotErrorIs(t, err, storage.ErrReportNotFound)

	_, err = siteRepo.GetSiteByURL(context.Background(), "https://inconnu.example")
	assert.ErrorIs(t, err, storage.ErrSiteNotFound)
}

func TestSiteRepository_AddInvalid(t *testing.T) {
	siteRepo, reportRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { reportRepo.Close(); siteRepo.Close(); backend.Close() }()

	ctx := context.Background()
	_, err = siteRepo.AddSites(ctx,
		&core.SiteEntry{Category: "Doctrine", SiteName: "Valid", URL: "https://valid.fr"},
		&core.SiteEntry{Category: "Doctrine", SiteName: "No URL"},
	)
	assert.ErrorIs(t, err, storage.ErrInvalidRecord)
	assert.ErrorIs(t, err, core.ErrEmptyURL)

	// Nothing is stored when any entry is invalid.
	sites, err := siteRepo.ListSites(ctx)
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestSiteRepository_ListSites(t *testing.T) {
	siteRepo, reportRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { reportRepo.Close(); siteRepo.Close(); backend.Close() }()

	ctx := context.Background()
	_, err = siteRepo.AddSites(ctx, newTestSites()...)
	require.NoError(t, err)

	sites, err := siteRepo.ListSites(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 4)

	names := make([]string, len(sites))
	for i, s := range sites {
		names[i] = s.SiteName
	}
	assert.Equal(t, []string{"Dalloz actualité", "Conseil d'État", "Cour de cassation", "Légifrance"}, names)
}

func TestSiteRepository_ListSitesByCategory(t *testing.T) {
	siteRepo, reportRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { reportRepo.Close(); siteRepo.Close(); backend.Close() }()

	ctx := context.Background()
	_, err = siteRepo.AddSites(ctx, newTestSites()...)
	require.NoError(t, err)

	sites, err := siteRepo.ListSitesByCategory(ctx, "Jurisprudence")
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "Conseil d'État", sites[0].SiteName)
	assert.Equal(t, "Cour de cassation", sites[1].SiteName)

	none, err := siteRepo.ListSitesByCategory(ctx, "Juris")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSiteRepository_Replace(t *testing.T) {
	siteRepo, reportRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { reportRepo.Close(); siteRepo.Close(); backend.Close() }()

	ctx := context.Background()
	first, err := siteRepo.AddSites(ctx, &core.SiteEntry{Category: "Doctrine", SiteName: "Blog", URL: "https://blog.fr"})
	require.NoError(t, err)
	insertedAt := first[0].InsertedAt

	_, err = siteRepo.AddSites(ctx, &core.SiteEntry{Category: "Jurisprudence", SiteName: "Blog juridique", URL: "https://blog.fr"})
	require.NoError(t, err)

	sites, err := siteRepo.ListSites(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, "Blog juridique", sites[0].SiteName)
	assert.True(t, insertedAt.Equal(sites[0].InsertedAt))

	old, err := siteRepo.ListSitesByCategory(ctx, "Doctrine")
	require.NoError(t, err)
	assert.Empty(t, old)

	moved, err := siteRepo.ListSitesByCategory(ctx, "Jurisprudence")
	require.NoError(t, err)
	assert.Len(t, moved, 1)
}

func TestSiteRepository_Delete(t *testing.T) {
	siteRepo, reportRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { reportRepo.Close(); siteRepo.Close(); backend.Close() }()

	ctx := context.Background()
	added, err := siteRepo.AddSites(ctx, newTestSites()...)
	require.NoError(t, err)

	require.NoError(t, siteRepo.DeleteSites(ctx, added[1].Id))

	_, err = siteRepo.GetSite(ctx, added[1].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	juris, err := siteRepo.ListSitesByCategory(ctx, "Jurisprudence")
	require.NoError(t, err)
	require.Len(t, juris, 1)
	assert.Equal(t, "Conseil d'État", juris[0].SiteName)

	err = siteRepo.DeleteSites(ctx, added[1].Id)
	assert.ErrorIs(t, err, storage.ErrSiteNotFound)
}
