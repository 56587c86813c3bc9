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


package storage

import (
	"errors"
	"fmt"

	"github.com/mus-format/mus-go"
	"github.com/poiesic/scrapreform/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, decodeError(err)
}

// MarshalSiteEntry serializes a SiteEntry to bytes.
func MarshalSiteEntry(site *core.SiteEntry) []byte {
	buf := make([]byte, core.SiteEntryMUS.Size(*site))
	core.SiteEntryMUS.Marshal(*site, buf)
	return buf
}

// UnmarshalSiteEntry deserializes a SiteEntry from bytes.
func UnmarshalSiteEntry(data []byte) (*core.SiteEntry, error) {
	site, _, err := core.SiteEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeError(err)
	}
	return &site, nil
}

// MarshalReport serializes a Report, matches included, to bytes.
func MarshalReport(report *core.Report) []byte {
	buf := make([]byte, core.ReportMUS.Size(*report))
	core.ReportMUS.Marshal(*report, buf)
	return buf
}

// UnmarshalReport deserializes a Report from bytes.
func UnmarshalReport(data []byte) (*core.Report, error) {
	report, _, err := core.ReportMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeError(err)
	}
	return &report, nil
}

// decodeError wraps a MUS decoding error in ErrSerializationFailed. A record
// cut short also matches ErrTruncatedData.
func decodeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mus.ErrTooSmallByteSlice) {
		return fmt.Errorf("%w: %w: %w", ErrSerializationFailed, ErrTruncatedData, err)
	}
	return fmt.Errorf("%w: %w", ErrSerializationFailed, err)
}
