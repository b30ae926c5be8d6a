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

// Package render implements the four output formats for the final record
// list. Every renderer is a pure function over the aggregated records,
// invoked exactly once after fetching completes, and total: missing fields
// render as empty strings or zeros, never as an error.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	rserrors "github.com/sirseerhq/reposcope/internal/errors"
	"github.com/sirseerhq/reposcope/internal/record"
)

// Format selects one of the supported output formats.
type Format string

const (
	FormatDefault  Format = "default"
	FormatDetailed Format = "detailed"
	FormatJSON     Format = "json"
	FormatCompact  Format = "compact"
)

// Formats lists every supported format name, for help text and validation.
func Formats() []string {
	return []string{
		string(FormatDefault),
		string(FormatDetailed),
		string(FormatJSON),
		string(FormatCompact),
	}
}

// ParseFormat validates a format name given on the command line or in a
// config file.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatDefault, FormatDetailed, FormatJSON, FormatCompact:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (expected one of: %s): %w",
		s, strings.Join(Formats(), ", "), rserrors.ErrInvalidConfig)
}

// Render writes records to w in the requested format.
func Render(w io.Writer, format Format, records []record.Record) error {
	switch format {
	case FormatDetailed:
		return renderDetailed(w, records)
	case FormatJSON:
		return renderJSON(w, records)
	case FormatCompact:
		return renderCompact(w, records)
	default:
		return renderDefault(w, records)
	}
}

func renderDefault(w io.Writer, records []record.Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "- %s: %s\n", r.String("name"), r.String("description")); err != nil {
			return err
		}
	}
	return nil
}

const detailedSeparator = "=================================================="

func renderDetailed(w io.Writer, records []record.Record) error {
	for _, r := range records {
		_, err := fmt.Fprintf(w,
			"Name: %s\n"+
				"Description: %s\n"+
				"URL: %s\n"+
				"Private: %t\n"+
				"Fork: %t\n"+
				"Stars: %d\n"+
				"Watchers: %d\n"+
				"Size: %d KB\n"+
				"Visibility: %s\n"+
				"Last Updated: %s\n"+
				"Topics: %s\n"+
				"%s\n\n",
			r.String("name"),
			r.String("description"),
			r.String("html_url"),
			r.Bool("private"),
			r.Bool("fork"),
			r.Int("stargazers_count"),
			r.Int("watchers_count"),
			r.Int("size"),
			r.String("visibility"),
			r.String("updated_at"),
			strings.Join(r.Strings("topics"), ", "),
			detailedSeparator,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// renderJSON reproduces the record list verbatim: every original field, in
// the original order, with the original numeric literals.
func renderJSON(w io.Writer, records []record.Record) error {
	if records == nil {
		records = []record.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func renderCompact(w io.Writer, records []record.Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "- %s | %s | %d stars\n",
			r.String("name"), r.String("description"), r.Int("stargazers_count")); err != nil {
			return err
		}
	}
	return nil
}
