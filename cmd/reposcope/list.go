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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirseerhq/reposcope/internal/config"
	scopeerrors "github.com/sirseerhq/reposcope/internal/errors"
	"github.com/sirseerhq/reposcope/internal/github"
	"github.com/sirseerhq/reposcope/internal/output"
	"github.com/sirseerhq/reposcope/internal/paginate"
	"github.com/sirseerhq/reposcope/internal/progress"
	"github.com/sirseerhq/reposcope/internal/render"
	"github.com/spf13/cobra"
)

// listOptions holds the flag values for the list command.
type listOptions struct {
	reposPerPage int
	maxPages     int
	limit        int
	format       string
	noToken      bool
	token        string
	outputFile   string
	configFile   string
}

// newListCommand builds the list subcommand.
func newListCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <account>",
		Short: "List repositories of a GitHub user or organization",
		Long: `List the public repositories of a GitHub account.

The account is the GitHub login of a user or organization.
For example: octocat, golang, kubernetes

By default every repository is fetched. Use --pages or --limit to bound
the fetch; when the limit is hit, everything fetched so far is still
rendered.

Authentication is optional but recommended for higher rate limits:
  - Use --token flag to provide a token directly
  - Or set GITHUB_TOKEN environment variable
  - Use --no-token to force anonymous access`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Create context with timeout
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			// Flags left at their zero value mean "not set": unset pagination
			// bounds become unlimited, unset page size and format defer to
			// the config layer.
			if !cmd.Flags().Changed("pages") {
				opts.maxPages = paginate.Unlimited
			}
			if !cmd.Flags().Changed("limit") {
				opts.limit = paginate.Unlimited
			}

			return runList(ctx, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.reposPerPage, "repos-per-page", "r", 0, "Repositories per API request, 1-100 (default from config, 100)")
	cmd.Flags().IntVarP(&opts.maxPages, "pages", "p", 0, "Maximum number of pages to fetch (default: unlimited)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 0, "Maximum total repositories to fetch (default: unlimited)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format: %s (default from config)", strings.Join(render.Formats(), ", ")))
	cmd.Flags().BoolVarP(&opts.noToken, "no-token", "n", false, "Force anonymous access even when a token is available")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Config file path (default: standard locations)")

	return cmd
}

// runList executes the list command.
func runList(ctx context.Context, account string, opts *listOptions) error {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("%w: %v", scopeerrors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", scopeerrors.ErrInvalidConfig, err)
	}

	// Resolve settings: flags beat config (config already folds in env
	// variables and file values).
	pageSize := cfg.GetPageSize(account)
	if opts.reposPerPage != 0 {
		pageSize = opts.reposPerPage
	}
	formatName := cfg.Defaults.OutputFormat
	if opts.format != "" {
		formatName = opts.format
	}

	if pageSize < 1 || pageSize > github.MaxPageSize {
		return fmt.Errorf("%w: repos-per-page must be between 1 and %d, got %d", scopeerrors.ErrInvalidConfig, github.MaxPageSize, pageSize)
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	token := getToken(opts.token, cfg.GitHub.TokenEnv, opts.noToken)
	if token == "" {
		fmt.Fprintln(os.Stderr, "Warning: No GitHub token provided. API calls may be rate limited.")
	}

	dest, err := output.Open(opts.outputFile)
	if err != nil {
		return err
	}
	defer dest.Close()

	client := github.NewRESTClient(token, cfg.GitHub.APIEndpoint)
	controller := paginate.New(client, progress.NewWriterReporter(os.Stderr))

	outcome, err := controller.Fetch(ctx, paginate.Request{
		Account:  account,
		PageSize: pageSize,
		MaxPages: opts.maxPages,
		MaxRepos: opts.limit,
	})
	if err != nil {
		reportPartial(err)
		return err
	}

	if len(outcome.Records) == 0 {
		fmt.Fprintf(os.Stderr, "No repositories found for account %q\n", account)
	}

	return render.Render(dest, format, outcome.Records)
}

// getToken resolves the GitHub token from flag or the configured
// environment variable. An explicit --no-token request wins over both.
func getToken(flagToken, tokenEnv string, noToken bool) string {
	if noToken {
		return ""
	}
	if flagToken != "" {
		return flagToken
	}
	if tokenEnv == "" {
		tokenEnv = "GITHUB_TOKEN"
	}
	return os.Getenv(tokenEnv)
}

// reportPartial tells the user how far the fetch got before it failed.
// Nothing fetched so far is rendered; a partial listing would silently
// masquerade as a complete one.
func reportPartial(err error) {
	var fetchErr *paginate.FetchError
	if !errors.As(err, &fetchErr) {
		return
	}

	if errors.Is(err, scopeerrors.ErrRateLimit) {
		fmt.Fprintf(os.Stderr, "Fetched %d repositories before hitting the rate limit.\n", len(fetchErr.Partial))
		fmt.Fprintln(os.Stderr, "Consider setting GITHUB_TOKEN environment variable for higher rate limits.")
		return
	}
	if len(fetchErr.Partial) > 0 {
		fmt.Fprintf(os.Stderr, "Fetched %d repositories before the failure on page %d.\n", len(fetchErr.Partial), fetchErr.Page)
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, scopeerrors.ErrInvalidConfig) {
		return 2 // Invalid configuration or flag values
	}
	if errors.Is(err, scopeerrors.ErrRateLimit) {
		return 3 // Rate limited by GitHub
	}
	if errors.Is(err, scopeerrors.ErrAccountNotFound) ||
		errors.Is(err, scopeerrors.ErrAPIFailure) ||
		errors.Is(err, scopeerrors.ErrNetworkFailure) {
		return 4 // API, account, or network failure
	}

	return 1 // General error
}
