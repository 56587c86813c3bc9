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


// Package storage provides the storage abstraction layer for scrapreform.
//
// This package defines repository interfaces that decouple storage implementation
// from the scrape pipeline. Two repositories exist:
//
//   - SiteRepository: the catalog of legal sources (category, name, URL)
//   - ReportRepository: the archive of past requests and their answers
//
// Neither is needed to filter text; the relevance filter works on plain strings.
// They back the command-line tool, which keeps a site catalog between runs and
// stores every report it produces.
//
// # Serialization
//
// Records are encoded with mus-go primitives (varint for integers, ord for
// strings). Times are stored as Unix nanoseconds, with zero meaning the zero
// time. The layouts are positional; adding a field means appending it.
//
// # Usage
//
// Create repositories on a BadgerDB backend:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	sites, err := badger.NewSiteRepository(backend)
//
// Use in tests with in-memory storage:
//
//	sites, reports, backend, err := badger.NewMemoryRepositories()
//
// # Error Handling
//
// Operations return ErrNotFound for missing records and ErrInvalidRecord
// (wrapping the core validation error) for records that fail validation.
// Decoding failures wrap ErrSerializationFailed.
package storage
