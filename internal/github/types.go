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

package github

import (
	"fmt"
	"net/http"
	"time"

	rserrors "github.com/sirseerhq/reposcope/internal/errors"
	"github.com/sirseerhq/reposcope/internal/record"
)

// RepoPage is one page of repository records returned by the listing
// endpoint. Records preserve the payload verbatim; Full reports whether the
// page held as many records as were requested, the only signal the API gives
// about whether more pages may exist.
type RepoPage struct {
	Records []record.Record
	Full    bool
}

// FetchOptions configures one page request.
type FetchOptions struct {
	// Page is the 1-based page number. Values below 1 are treated as 1.
	Page int

	// PageSize is the number of records to request, 1 to 100.
	// Defaults to DefaultPageSize if not specified.
	PageSize int
}

// Page size bounds imposed by the GitHub API.
const (
	DefaultPageSize = 100
	MaxPageSize     = 100
)

// RateLimitError reports a fetch aborted by API throttling. RetryAfter
// carries the wait hint from the response headers, or zero when the API gave
// none.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%v (retry after %s)", rserrors.ErrRateLimit, e.RetryAfter)
	}
	return rserrors.ErrRateLimit.Error()
}

func (e *RateLimitError) Unwrap() error { return rserrors.ErrRateLimit }

// APIError reports a non-2xx, non-rate-limit API response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api returned status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return rserrors.ErrAccountNotFound
	}
	return rserrors.ErrAPIFailure
}
