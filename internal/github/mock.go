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
	"context"

	"github.com/sirseerhq/reposcope/internal/record"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Pages holds the records to serve, indexed by page number
	// (Pages[0] is page 1). Requests past the last page get an empty page.
	Pages [][]record.Record

	// Error to return
	Error error

	// FailOnPage returns Error only for that page (1-based, 0 means every call)
	FailOnPage int

	// Track calls for verification
	CallCount   int
	LastAccount string
	LastOpts    FetchOptions
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Pages: [][]record.Record{generateTestRepos()},
	}
}

// FetchRepoPage implements the Client interface
func (m *MockClient) FetchRepoPage(ctx context.Context, account string, opts FetchOptions) (*RepoPage, error) {
	// Track the call
	m.CallCount++
	m.LastAccount = account
	m.LastOpts = opts

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.Error != nil && (m.FailOnPage == 0 || m.FailOnPage == opts.Page) {
		return nil, m.Error
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}

	var records []record.Record
	if page <= len(m.Pages) {
		records = m.Pages[page-1]
	}

	return &RepoPage{
		Records: records,
		Full:    len(records) == pageSize,
	}, nil
}

// generateTestRepos creates sample repository data for testing
func generateTestRepos() []record.Record {
	return []record.Record{
		record.New(
			record.Field{Key: "name", Value: record.StringValue("hello-world")},
			record.Field{Key: "description", Value: record.StringValue("My first repository")},
			record.Field{Key: "stargazers_count", Value: record.NumberValue(80)},
			record.Field{Key: "fork", Value: record.BoolValue(false)},
		),
		record.New(
			record.Field{Key: "name", Value: record.StringValue("spoon-knife")},
			record.Field{Key: "description", Value: record.StringValue("Forking demo")},
			record.Field{Key: "stargazers_count", Value: record.NumberValue(12)},
			record.Field{Key: "fork", Value: record.BoolValue(true)},
		),
		record.New(
			record.Field{Key: "name", Value: record.StringValue("octocat.github.io")},
			record.Field{Key: "stargazers_count", Value: record.NumberValue(3)},
		),
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithPages sets the pages of records to serve
func WithPages(pages ...[]record.Record) MockClientOption {
	return func(m *MockClient) {
		m.Pages = pages
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithErrorOnPage makes the client fail only when fetching the given page
func WithErrorOnPage(err error, page int) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
		m.FailOnPage = page
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
