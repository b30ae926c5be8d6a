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

// Package paginate implements the fetch loop that drives sequential page
// requests against the repository listing endpoint. The controller owns the
// running aggregate and the three stopping conditions (record limit, page
// limit, exhaustion), emits progress events as it runs, and preserves any
// partial aggregate inside the error when a fetch aborts.
//
// The API provides no authoritative total count, so the end of the data is
// inferred from a non-full page. A page holding exactly the requested page
// size never ends the loop, even when it happens to be the last real page:
// one more request follows and its empty page is treated as normal
// exhaustion.
package paginate

import (
	"context"
	"fmt"

	rserrors "github.com/sirseerhq/reposcope/internal/errors"
	"github.com/sirseerhq/reposcope/internal/github"
	"github.com/sirseerhq/reposcope/internal/progress"
	"github.com/sirseerhq/reposcope/internal/record"
)

// Unlimited disables a page or record limit.
const Unlimited = -1

// StopReason explains why a fetch stopped issuing page requests.
type StopReason string

const (
	// StopExhausted means a non-full page signaled the end of the data.
	StopExhausted StopReason = "exhausted"

	// StopPageLimit means the configured page limit was reached.
	StopPageLimit StopReason = "page-limit"

	// StopRecordLimit means the configured record limit was reached.
	StopRecordLimit StopReason = "record-limit"
)

// Request describes one fetch: the account to list and the limits to apply.
// Requests are immutable inputs; validation happens before any network call.
type Request struct {
	// Account is the GitHub account whose repositories are listed.
	Account string

	// PageSize is the number of records requested per page, 1 to 100.
	PageSize int

	// MaxPages caps how many page requests are issued.
	// Unlimited disables the cap.
	MaxPages int

	// MaxRepos caps the total number of records returned. Unlimited disables
	// the cap. Zero is honored literally: no requests are issued and the
	// result is empty.
	MaxRepos int
}

// Outcome is the terminal result of a completed fetch. Records hold every
// fetched record in page order: pages in ascending page-number order,
// records within a page in received order, never reordered or deduplicated.
type Outcome struct {
	Records []record.Record
	Reason  StopReason
	Pages   int
}

// FetchError wraps a failure mid-fetch, preserving the records accumulated
// before the failing page so a caller may choose to use partial data. The
// controller itself never substitutes partial results for a full result.
type FetchError struct {
	// Partial holds the records fetched before the failure. Never nil: a
	// first-page failure carries an empty slice, not an absent one.
	Partial []record.Record

	// Page is the page request that failed.
	Page int

	// Err is the underlying failure.
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch aborted on page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Controller drives the page-by-page fetch loop. Each Fetch call owns a
// private aggregate and page counter, so one controller may serve concurrent
// fetches for different accounts without locking.
type Controller struct {
	client   github.Client
	reporter progress.Reporter
}

// New creates a controller. A nil reporter discards progress events.
func New(client github.Client, reporter progress.Reporter) *Controller {
	if reporter == nil {
		reporter = progress.NopReporter{}
	}
	return &Controller{client: client, reporter: reporter}
}

// Fetch retrieves the repositories owned by req.Account, page by page, until
// a stopping condition fires. Stopping conditions are evaluated in
// precedence order after each page: record limit, page limit, exhaustion.
// Requests are strictly sequential because each page's stopping decision
// depends on the previous page's result.
func (c *Controller) Fetch(ctx context.Context, req Request) (*Outcome, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	aggregate := []record.Record{}

	if req.MaxRepos == 0 {
		c.reporter.Report(progress.RecordLimitReached(0))
		c.reporter.Report(progress.Finished(0))
		return &Outcome{Records: aggregate, Reason: StopRecordLimit}, nil
	}

	page := 1
	for {
		c.reporter.Report(progress.PageStarted(page))

		result, err := c.client.FetchRepoPage(ctx, req.Account, github.FetchOptions{
			Page:     page,
			PageSize: req.PageSize,
		})
		if err != nil {
			return nil, &FetchError{Partial: aggregate, Page: page, Err: err}
		}

		aggregate = append(aggregate, result.Records...)
		c.reporter.Report(progress.PageCompleted(page, len(result.Records), len(aggregate)))

		switch {
		case req.MaxRepos != Unlimited && len(aggregate) >= req.MaxRepos:
			// Never return more than requested, even when the last page
			// overshoots the limit.
			aggregate = aggregate[:req.MaxRepos]
			c.reporter.Report(progress.RecordLimitReached(req.MaxRepos))
			return c.finish(aggregate, StopRecordLimit, page), nil
		case req.MaxPages != Unlimited && page >= req.MaxPages:
			c.reporter.Report(progress.PageLimitReached(req.MaxPages))
			return c.finish(aggregate, StopPageLimit, page), nil
		case !result.Full:
			return c.finish(aggregate, StopExhausted, page), nil
		}

		page++
	}
}

func (c *Controller) finish(records []record.Record, reason StopReason, pages int) *Outcome {
	c.reporter.Report(progress.Finished(len(records)))
	return &Outcome{Records: records, Reason: reason, Pages: pages}
}

func validate(req Request) error {
	if req.Account == "" {
		return fmt.Errorf("account must not be empty: %w", rserrors.ErrInvalidConfig)
	}
	if req.PageSize < 1 || req.PageSize > github.MaxPageSize {
		return fmt.Errorf("page size must be between 1 and %d, got %d: %w",
			github.MaxPageSize, req.PageSize, rserrors.ErrInvalidConfig)
	}
	if req.MaxPages != Unlimited && req.MaxPages < 1 {
		return fmt.Errorf("page limit must be positive, got %d: %w",
			req.MaxPages, rserrors.ErrInvalidConfig)
	}
	if req.MaxRepos != Unlimited && req.MaxRepos < 0 {
		return fmt.Errorf("record limit must not be negative, got %d: %w",
			req.MaxRepos, rserrors.ErrInvalidConfig)
	}
	return nil
}
