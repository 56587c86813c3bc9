package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poiesic/scrapreform/core"
	"github.com/poiesic/scrapreform/scrape"
	"github.com/poiesic/scrapreform/storage"
	"github.com/tidwall/gjson"
)

var errInvalidRequest = errors.New("invalid request")

// parseRequest reads a request of the form
//
//	{"prompt": "...", "useAI": true, "sites": [{"category": "...", "siteName": "...", "url": "...", "file": "..."}]}
//
// A site may carry its text inline under "text" instead of "file". Sites that
// only give a URL are completed from the catalog when one is provided.
func parseRequest(ctx context.Context, data []byte, textDir string, catalog storage.SiteRepository) (scrape.Request, error) {
	if !gjson.ValidBytes(data) {
		return scrape.Request{}, fmt.Errorf("%w: malformed JSON", errInvalidRequest)
	}
	root := gjson.ParseBytes(data)

	sites := root.Get("sites")
	if !sites.IsArray() || len(sites.Array()) == 0 {
		return scrape.Request{}, fmt.Errorf("%w: sites array is required", errInvalidRequest)
	}

	req := scrape.Request{
		Query: root.Get("prompt").String(),
		UseAI: root.Get("useAI").Bool(),
	}

	for i, s := range sites.Array() {
		site := core.SiteEntry{
			Category: s.Get("category").String(),
			SiteName: s.Get("siteName").String(),
			URL:      s.Get("url").String(),
		}
		if catalog != nil && site.URL != "" && (site.SiteName == "" || site.Category == "") {
			known, err := catalog.GetSiteByURL(ctx, site.URL)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return scrape.Request{}, err
			}
			if known != nil {
				if site.SiteName == "" {
					site.SiteName = known.SiteName
				}
				if site.Category == "" {
					site.Category = known.Category
				}
			}
		}
		if err := core.ValidateSiteEntry(&site); err != nil {
			return scrape.Request{}, fmt.Errorf("%w: site %d: %w", errInvalidRequest, i, err)
		}
		site.Id = core.SiteID(site.URL)

		text, err := siteText(s, textDir)
		if err != nil {
			return scrape.Request{}, fmt.Errorf("%w: site %q: %w", errInvalidRequest, site.SiteName, err)
		}
		req.Documents = append(req.Documents, core.SourceDocument{Site: site, Text: text})
	}

	return req, nil
}

func siteText(s gjson.Result, textDir string) (string, error) {
	if text := s.Get("text"); text.Exists() {
		return text.String(), nil
	}
	file := s.Get("file").String()
	if file == "" {
		return "", errors.New("no text or file given")
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(textDir, file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
