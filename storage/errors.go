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
)

var (
	// ErrNotFound matches every lookup of a missing site or report.
	ErrNotFound = errors.New("not found")

	// ErrSiteNotFound indicates no catalog site has the requested ID or URL.
	ErrSiteNotFound = fmt.Errorf("site %w", ErrNotFound)

	// ErrReportNotFound indicates no archived report has the requested ID.
	ErrReportNotFound = fmt.Errorf("report %w", ErrNotFound)

	// ErrInvalidRecord wraps the core validation error of a rejected site or report.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrStorageClosed is returned by every operation after the store is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidQuery indicates a listing was requested with bad parameters.
	ErrInvalidQuery = errors.New("invalid listing parameters")

	// ErrSerializationFailed wraps every error decoding a stored record.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrTruncatedData indicates a stored record ended before its last field.
	ErrTruncatedData = errors.New("truncated record")
)
