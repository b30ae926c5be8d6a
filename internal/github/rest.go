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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	rserrors "github.com/sirseerhq/reposcope/internal/errors"
	"github.com/sirseerhq/reposcope/internal/record"
)

// RESTClient implements the Client interface against the GitHub REST API.
type RESTClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewRESTClient creates a GitHub REST client for the given endpoint
// (e.g. https://api.github.com, or a GitHub Enterprise address). The token
// may be empty for anonymous access. The client is configured with:
//   - Authentication via the provided token, when present
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
//   - Optimized connection pooling for API performance
//
// The client performs no retries: transient failures propagate to the caller.
func NewRESTClient(token, endpoint string) *RESTClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &RESTClient{
		httpClient: &http.Client{
			Transport: &authTransport{
				token: token,
				base:  transport,
			},
		},
		baseURL: strings.TrimSuffix(endpoint, "/"),
	}
}

// FetchRepoPage fetches one page of repositories owned by account via
// GET /users/{account}/repos. The response is classified before decoding:
// rate limits surface as *RateLimitError, other non-2xx responses as
// *APIError, and transport failures wrap ErrNetworkFailure.
func (c *RESTClient) FetchRepoPage(ctx context.Context, account string, opts FetchOptions) (*RepoPage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&page=%d",
		c.baseURL, url.PathEscape(account), pageSize, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for page %d: %w", page, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %v: %w", page, err, rserrors.ErrNetworkFailure)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading page %d response: %v: %w", page, err, rserrors.ErrNetworkFailure)
	}

	class, msg, wait := classifyResponse(resp.StatusCode, resp.Header, body)
	switch class {
	case classRateLimited:
		return nil, &RateLimitError{RetryAfter: wait}
	case classAPIError:
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	records, err := record.DecodePage(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", page, err)
	}

	return &RepoPage{
		Records: records,
		Full:    len(records) == pageSize,
	}, nil
}
