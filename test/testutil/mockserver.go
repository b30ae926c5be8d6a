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

// Package testutil provides common test helpers for reposcope
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
)

// MockServer provides common mock server configurations for testing
type MockServer struct {
	*httptest.Server
	requestCount *int32
}

// RequestCount returns how many requests the server has handled.
func (s *MockServer) RequestCount() int {
	if s.requestCount == nil {
		return 0
	}
	return int(atomic.LoadInt32(s.requestCount))
}

// NewMockServer creates a basic mock server with a custom handler
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &MockServer{Server: server}
}

// NewRepoListServer creates a mock server that serves a paginated repository
// listing of total repositories, honoring the per_page and page query
// parameters the way the real endpoint does.
func NewRepoListServer(t *testing.T, total int) *MockServer {
	t.Helper()
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		AssertListRequest(t, r)

		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		if perPage < 1 {
			perPage = 30
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		start := (page - 1) * perPage
		end := start + perPage
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(GenerateRepos(start+1, end-start))
	}))
	t.Cleanup(server.Close)

	return &MockServer{Server: server, requestCount: &requestCount}
}

// NewRateLimitServer creates a mock server that simulates rate limiting with
// the given status code (429, or 403 with a rate-limit message body) after
// serving okCount successful pages of pageSize records.
func NewRateLimitServer(t *testing.T, statusCode, retryAfter, okCount, pageSize int) *MockServer {
	t.Helper()
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := atomic.AddInt32(&requestCount, 1)

		if int(count) > okCount {
			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			}
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.WriteHeader(statusCode)
			_, _ = w.Write([]byte(`{"message": "API rate limit exceeded for 127.0.0.1."}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		start := (int(count)-1)*pageSize + 1
		_ = json.NewEncoder(w).Encode(GenerateRepos(start, pageSize))
	}))
	t.Cleanup(server.Close)

	return &MockServer{Server: server, requestCount: &requestCount}
}

// NewErrorServer creates a mock server that always returns the specified
// status with a GitHub-style error envelope
func NewErrorServer(t *testing.T, statusCode int, message string) *MockServer {
	t.Helper()
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
	}))
	t.Cleanup(server.Close)

	return &MockServer{Server: server, requestCount: &requestCount}
}

// GenerateRepos generates count mock repository objects numbered from start
func GenerateRepos(start, count int) []map[string]interface{} {
	repos := make([]map[string]interface{}, 0, count)

	for i := start; i < start+count; i++ {
		repos = append(repos, map[string]interface{}{
			"id":               i,
			"name":             fmt.Sprintf("repo-%d", i),
			"full_name":        fmt.Sprintf("octocat/repo-%d", i),
			"description":      fmt.Sprintf("Test repository %d", i),
			"html_url":         fmt.Sprintf("https://github.com/octocat/repo-%d", i),
			"private":          false,
			"fork":             i%3 == 0,
			"stargazers_count": i * 2,
			"watchers_count":   i * 2,
			"size":             i * 10,
			"visibility":       "public",
			"updated_at":       "2024-01-15T10:30:00Z",
			"topics":           []string{"testing", "fixtures"},
		})
	}

	return repos
}

// AssertListRequest validates a repository listing request
func AssertListRequest(t *testing.T, r *http.Request) {
	t.Helper()
	if r.Method != http.MethodGet {
		t.Errorf("Expected GET method, got: %s", r.Method)
	}
	if accept := r.Header.Get("Accept"); accept != "application/vnd.github+json" {
		t.Errorf("Expected Accept: application/vnd.github+json, got: %s", accept)
	}
	if ver := r.Header.Get("X-GitHub-Api-Version"); ver != "2022-11-28" {
		t.Errorf("Expected X-GitHub-Api-Version: 2022-11-28, got: %s", ver)
	}
}
