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

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Backoff is the retry schedule of summarizer calls: up to Attempts calls,
// pausing Delay after the first failure and doubling the pause after each
// further one.
type Backoff struct {
	Attempts int
	Delay    time.Duration
}

// Backoff returns the schedule set by MaxRetries and RetryDelay.
func (c *Config) Backoff() Backoff {
	return Backoff{Attempts: c.MaxRetries, Delay: c.RetryDelay}
}

// Wait returns the pause after the given failed attempt, counted from 1.
func (b Backoff) Wait(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}
	return b.Delay << (attempt - 1)
}

// Retryable reports whether a failed summarizer call can succeed on a later
// attempt. Rejected credentials and cancelled requests are final.
func Retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}

// Do calls call until it succeeds, returns an error that is not Retryable, or
// the attempts run out, and returns the last error. call receives the attempt
// number, counted from 1. A nil logger uses slog.Default().
func (b Backoff) Do(ctx context.Context, logger *slog.Logger, call func(attempt int) error) error {
	if b.Attempts <= 0 {
		return ErrInvalidMaxAttempts
	}
	if logger == nil {
		logger = slog.Default()
	}

	var err error
	for attempt := 1; attempt <= b.Attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = call(attempt); err == nil {
			if attempt > 1 {
				logger.Debug("summarizer call succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		if !Retryable(err) || attempt == b.Attempts {
			break
		}

		wait := b.Wait(attempt)
		logger.Debug("summarizer call failed, retrying",
			"attempt", attempt,
			"attempts", b.Attempts,
			"wait", wait,
			"rateLimited", errors.Is(err, ErrRateLimited),
			"error", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
