package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/poiesic/scrapreform/core"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// manifest is the YAML layout accepted by "sites import".
type manifest struct {
	Sites []manifestSite `yaml:"sites"`
}

type manifestSite struct {
	Category string `yaml:"category"`
	SiteName string `yaml:"siteName"`
	URL      string `yaml:"url"`
}

func loadManifest(path string) ([]*core.SiteEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	sites := make([]*core.SiteEntry, 0, len(m.Sites))
	for _, s := range m.Sites {
		sites = append(sites, &core.SiteEntry{
			Category: s.Category,
			SiteName: s.SiteName,
			URL:      s.URL,
		})
	}
	return sites, nil
}

func sitesImportCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one manifest path")
	}

	sites, err := loadManifest(c.Args().First())
	if err != nil {
		return err
	}

	db, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	added, err := db.SiteRepository().AddSites(context.Background(), sites...)
	if err != nil {
		return fmt.Errorf("failed to import sites: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Imported %d sites\n", len(added))
	return nil
}

func sitesListCommand(c *cli.Context) error {
	db, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	var sites []*core.SiteEntry
	if category := c.String("category"); category != "" {
		sites, err = db.SiteRepository().ListSitesByCategory(ctx, category)
	} else {
		sites, err = db.SiteRepository().ListSites(ctx)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tSITE\tURL")
	for _, s := range sites {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Category, s.SiteName, s.URL)
	}
	return w.Flush()
}

func sitesRemoveCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected at least one URL")
	}

	db, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	ids := make([]core.ID, 0, c.NArg())
	for _, url := range c.Args().Slice() {
		ids = append(ids, core.SiteID(url))
	}
	if err := db.SiteRepository().DeleteSites(context.Background(), ids...); err != nil {
		return fmt.Errorf("failed to remove sites: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Removed %d sites\n", len(ids))
	return nil
}
