package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/scrapreform/core"
)

// Key prefixes for different data types
const (
	siteRecordPrefix   = "siterec"
	siteCategoryPrefix = "sitecat"
	reportRecordPrefix = "reprec"
	reportDatePrefix   = "reprecd"
	reportIDSeq        = "reprecseq"
)

// makeSiteKey generates a key for a site by ID.
func makeSiteKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", siteRecordPrefix, id))
}

// makeSiteCategoryKey generates a composite key for the category index.
// Format: prefix:category\x00id
func makeSiteCategoryKey(category string, id core.ID) []byte {
	partial := makePartialSiteCategoryKey(category)
	buf := make([]byte, len(partial)+8)
	offset := copy(buf, partial)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialSiteCategoryKey generates the key prefix shared by all sites of a category.
// The NUL terminator keeps "Doctrine" from matching "Doctrine sportive".
func makePartialSiteCategoryKey(category string) []byte {
	prefix := siteCategoryPrefix + ":"
	buf := make([]byte, len(prefix)+len(category)+1)
	offset := copy(buf, prefix)
	copy(buf[offset:], category)
	return buf
}

// makeReportKey generates a key for a report by ID.
func makeReportKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", reportRecordPrefix, id))
}

// makeReportDateKey generates a composite key for the report date index.
// Format: prefix:timestamp:id
func makeReportDateKey(createdAt time.Time, id core.ID) []byte {
	prefix := reportDatePrefix + ":"
	buf := make([]byte, len(prefix)+16) // 8 bytes for timestamp + 8 bytes for ID
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
