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

// Package main implements the reposcope command-line interface.
// This tool lists the repositories of a GitHub user or organization,
// fetching every page of the account's repository listing and rendering
// it in a choice of human-readable and machine-readable formats.
//
// The CLI supports:
//   - Fetching all repositories of an account (default behavior)
//   - Bounding the fetch by page count or total repository count
//   - Four output formats: default, detailed, json, compact
//   - Customizable output destinations (stdout or file)
//   - GitHub token authentication via flag or environment variable,
//     with explicit anonymous access for public data
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	reposcope list <account> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	reposcope list octocat --format json --output repos.json
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Invalid configuration or flag values
//   - 3: GitHub rate limit exceeded
//   - 4: API, account, or network failure
package main
