package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SiteEntry identifies a source the scraper reads from.
// Site metadata is passed through unmodified into citations; URLs are not validated
// beyond being non-empty.
type SiteEntry struct {
	Id         ID
	Category   string
	SiteName   string
	URL        string
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// SiteID returns the content ID of a site, derived from its URL.
func SiteID(url string) ID {
	return IDFromContent("site:" + url)
}

// SourceDocument is the already-extracted text of one site for one request.
// Markup is stripped upstream.
type SourceDocument struct {
	Site SiteEntry
	Text string
}

// Paragraph is a contiguous line-delimited span of a SourceDocument's text.
// Index is the position of the paragraph among the paragraphs that survived the
// length floor, and is used to break score ties.
type Paragraph struct {
	Index int
	Text  string
}

// RelevantMatch is the filtered contribution of one source to a report.
type RelevantMatch struct {
	SiteName           string
	Category           string
	URL                string
	MatchingKeywords   []string
	RelevantParagraphs []string // at most 15, best first
	RelevanceScore     float64
}

// Report is the outcome of one scrape request.
type Report struct {
	Id        ID
	RequestID string
	Query     string
	Keywords  []string        // primary keywords extracted from Query
	Matches   []RelevantMatch // sources that contributed filtered excerpts
	Content   string          // assembled text handed to the summarizer
	Answer    string          // summarizer output, or the raw content when AI is disabled
	CreatedAt time.Time
}
