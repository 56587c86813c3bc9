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


package scrape

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker reports how far the filtering of a request's sources has
// got, and how many of them contributed excerpts.
type ProgressTracker struct {
	mu sync.Mutex
	w  io.Writer

	sources    int
	every      int
	done       int
	relevant   int
	paragraphs int
	shown      int

	began   time.Time
	running bool
}

// NewProgressTracker creates a tracker for sources sources that redraws its
// line every every finished sources. every is raised to 1.
func NewProgressTracker(w io.Writer, sources, every int) *ProgressTracker {
	return &ProgressTracker{w: w, sources: sources, every: max(every, 1)}
}

// Start resets the counters and starts the clock.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.began = time.Now()
	p.running = true
	p.done, p.relevant, p.paragraphs, p.shown = 0, 0, 0, 0
}

// SourceDone records one filtered source. paragraphs is the number of
// excerpts it kept; a source with none counts as skipped.
func (p *ProgressTracker) SourceDone(paragraphs int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running || p.done >= p.sources {
		return
	}
	p.done++
	if paragraphs > 0 {
		p.relevant++
		p.paragraphs += paragraphs
	}
	if p.done-p.shown >= p.every {
		p.draw()
		p.shown = p.done
	}
}

// Finish draws the final line. Sources never reported, such as those dropped
// on cancellation, count as skipped.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	p.done = p.sources
	p.draw()
	fmt.Fprintln(p.w)
	p.running = false
}

// Counts returns the relevant and skipped sources seen so far.
func (p *ProgressTracker) Counts() (relevant, skipped int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.relevant, p.done - p.relevant
}

// Elapsed returns the time since Start, or zero before it.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.began.IsZero() {
		return 0
	}
	return time.Since(p.began)
}

// draw must be called with mu held.
func (p *ProgressTracker) draw() {
	pct := 100.0
	if p.sources > 0 {
		pct = float64(p.done) / float64(p.sources) * 100
	}
	rate := 0.0
	if secs := time.Since(p.began).Seconds(); secs > 0 {
		rate = float64(p.done) / secs
	}
	fmt.Fprintf(p.w, "\rFiltering: %d/%d sources (%.1f%%), %d relevant, %d skipped, %d excerpts - %.1f sources/s",
		p.done, p.sources, pct, p.relevant, p.done-p.relevant, p.paragraphs, rate)
}
