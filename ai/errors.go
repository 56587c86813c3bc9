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


package ai

import "errors"

var (
	// ErrRateLimited indicates the service rejected the request with a rate limit.
	ErrRateLimited = errors.New("ai service rate limited")

	// ErrUnauthorized indicates the token was rejected or the account has no quota left.
	ErrUnauthorized = errors.New("ai service unauthorized")

	// ErrEmptyResponse indicates the model returned no choices.
	ErrEmptyResponse = errors.New("ai service returned an empty response")

	// ErrSummarizerRequired indicates a summary was requested without a summarizer.
	ErrSummarizerRequired = errors.New("summarizer is required")

	// ErrInvalidMaxAttempts indicates a retry was configured with fewer than one attempt.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
