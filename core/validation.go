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


package core

import (
	"fmt"
	"strings"
)

// ValidateSiteEntry validates a SiteEntry according to domain rules.
//
// Validation rules:
//   - SiteName must not be blank
//   - Category must not be blank
//   - URL must not be blank
//
// NOT validated:
//   - URL well-formedness (passed through verbatim for citations)
//   - ID (computed from the URL by the repository)
func ValidateSiteEntry(site *SiteEntry) error {
	if site == nil {
		return fmt.Errorf("%w: site is nil", ErrInvalidSiteEntry)
	}

	if strings.TrimSpace(site.SiteName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSiteEntry, ErrEmptySiteName)
	}

	if strings.TrimSpace(site.Category) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSiteEntry, ErrEmptyCategory)
	}

	if strings.TrimSpace(site.URL) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSiteEntry, ErrEmptyURL)
	}

	return nil
}

// ValidateReport validates a Report before it is archived.
// Only the query is required; a report with no matches is a normal outcome.
func ValidateReport(report *Report) error {
	if report == nil {
		return fmt.Errorf("%w: report is nil", ErrInvalidReport)
	}

	if strings.TrimSpace(report.Query) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidReport, ErrEmptyQuery)
	}

	return nil
}
