// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package progress reports fetch progress on a diagnostic stream so the
// primary output stays machine-parseable. Events are created and consumed
// synchronously within one fetch and never persisted.
package progress

import (
	"fmt"
	"io"
)

// EventKind discriminates progress events.
type EventKind int

const (
	EventPageStarted EventKind = iota
	EventPageCompleted
	EventLimitReached
	EventFinished
)

// LimitKind identifies which configured limit fired.
type LimitKind string

const (
	LimitPages   LimitKind = "pages"
	LimitRecords LimitKind = "records"
)

// Event is one progress notification emitted by the fetch loop.
type Event struct {
	Kind      EventKind
	Page      int       // PageStarted, PageCompleted
	PageCount int       // PageCompleted: records on this page
	Total     int       // PageCompleted, Finished: records so far
	Limit     LimitKind // LimitReached
	Value     int       // LimitReached: the configured limit
}

// PageStarted reports that the request for the given page is being issued.
func PageStarted(page int) Event {
	return Event{Kind: EventPageStarted, Page: page}
}

// PageCompleted reports a decoded page and the running total.
func PageCompleted(page, pageCount, total int) Event {
	return Event{Kind: EventPageCompleted, Page: page, PageCount: pageCount, Total: total}
}

// PageLimitReached reports that the configured page limit stopped the fetch.
func PageLimitReached(limit int) Event {
	return Event{Kind: EventLimitReached, Limit: LimitPages, Value: limit}
}

// RecordLimitReached reports that the configured record limit stopped the fetch.
func RecordLimitReached(limit int) Event {
	return Event{Kind: EventLimitReached, Limit: LimitRecords, Value: limit}
}

// Finished reports the final record count once fetching stops.
func Finished(total int) Event {
	return Event{Kind: EventFinished, Total: total}
}

// Reporter consumes progress events. Implementations must never fail the
// fetch: Report returns nothing and must swallow write errors.
type Reporter interface {
	Report(Event)
}

// NopReporter discards all events.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(Event) {}

// WriterReporter writes one human-readable line per event, typically to
// stderr so stdout stays clean for rendered output.
type WriterReporter struct {
	w io.Writer
}

// NewWriterReporter creates a reporter writing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Report implements Reporter. Write errors are ignored: a broken diagnostic
// stream must not abort fetching.
func (r *WriterReporter) Report(ev Event) {
	switch ev.Kind {
	case EventPageStarted:
		fmt.Fprintf(r.w, "Fetching page %d...\n", ev.Page)
	case EventPageCompleted:
		fmt.Fprintf(r.w, "Retrieved %d repositories from page %d\n", ev.PageCount, ev.Page)
	case EventLimitReached:
		switch ev.Limit {
		case LimitPages:
			fmt.Fprintf(r.w, "Reached page limit (%d)\n", ev.Value)
		case LimitRecords:
			fmt.Fprintf(r.w, "Reached repository limit (%d)\n", ev.Value)
		}
	case EventFinished:
		fmt.Fprintf(r.w, "Total repositories fetched: %d\n", ev.Total)
	}
}
