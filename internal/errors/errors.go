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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidConfig indicates invalid command-line arguments or configuration.
	// Surfaced before any network call. Maps to exit code 2.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRateLimit indicates the GitHub API rate limit has been exhausted.
	// Maps to exit code 3.
	ErrRateLimit = errors.New("github rate limit exceeded")

	// ErrAccountNotFound indicates the requested account does not exist or is
	// not accessible. Maps to exit code 4.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAPIFailure indicates a non-2xx API response outside the rate-limit
	// and not-found cases. Maps to exit code 4.
	ErrAPIFailure = errors.New("github api request failed")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 4.
	ErrNetworkFailure = errors.New("network connection failed")
)
