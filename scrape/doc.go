// Package scrape runs a query over a set of already-extracted source documents.
//
// The Pipeline type manages one request end to end:
//   - Extracting keywords from the query
//   - Filtering every source concurrently for relevant paragraphs
//   - Assembling the per-source excerpt block
//   - Asking the summarizer for a cited analysis
//   - Archiving the report
//
// When the query yields no keywords, or the AI step is disabled, each source
// contributes a capped slice of its raw text instead of filtered excerpts.
package scrape
