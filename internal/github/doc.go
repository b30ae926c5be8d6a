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

// Package github provides a client for the GitHub REST API endpoint that
// lists the repositories owned by an account. It fetches one page per call
// and classifies every response as success, rate-limited, or API error
// before handing the payload to decoding.
//
// The package includes:
//   - A Client interface for fetching one page of repository listings
//   - A REST implementation with auth, user-agent, and response size limits
//   - A single auditable response-classification table for rate-limit detection
//   - Mock client for testing
//
// Basic usage:
//
//	client := github.NewRESTClient("your-github-token", "https://api.github.com")
//	page, err := client.FetchRepoPage(ctx, "octocat", github.FetchOptions{
//	    Page:     1,
//	    PageSize: 100,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	for _, repo := range page.Records {
//	    // Process repository
//	}
package github
