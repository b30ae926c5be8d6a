package render

import (
	"errors"
	"strings"
	"testing"

	rserrors "github.com/sirseerhq/reposcope/internal/errors"
	"github.com/sirseerhq/reposcope/internal/record"
)

func sampleRecords(t *testing.T) []record.Record {
	t.Helper()
	records, err := record.DecodePage(strings.NewReader(`[
		{
			"name": "hello-world",
			"description": "My first repository",
			"html_url": "https://github.com/octocat/hello-world",
			"private": false,
			"fork": false,
			"stargazers_count": 80,
			"watchers_count": 80,
			"size": 108,
			"visibility": "public",
			"updated_at": "2024-01-15T10:30:00Z",
			"topics": ["octocat", "api"]
		},
		{
			"name": "bare-repo"
		}
	]`))
	if err != nil {
		t.Fatalf("DecodePage() error = %v", err)
	}
	return records
}

func TestParseFormat(t *testing.T) {
	for _, name := range Formats() {
		t.Run(name, func(t *testing.T) {
			got, err := ParseFormat(name)
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", name, err)
			}
			if string(got) != name {
				t.Errorf("ParseFormat(%q) = %q", name, got)
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := ParseFormat("yaml")
		if !errors.Is(err, rserrors.ErrInvalidConfig) {
			t.Errorf("ParseFormat(yaml) error = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestRenderDefault(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, FormatDefault, sampleRecords(t)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "- hello-world: My first repository\n" +
		"- bare-repo: \n"
	if sb.String() != want {
		t.Errorf("default output = %q, want %q", sb.String(), want)
	}
}

func TestRenderCompact(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, FormatCompact, sampleRecords(t)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "- hello-world | My first repository | 80 stars\n" +
		"- bare-repo |  | 0 stars\n"
	if sb.String() != want {
		t.Errorf("compact output = %q, want %q", sb.String(), want)
	}
}

func TestRenderDetailed(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, FormatDetailed, sampleRecords(t)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := sb.String()

	wantFirst := "Name: hello-world\n" +
		"Description: My first repository\n" +
		"URL: https://github.com/octocat/hello-world\n" +
		"Private: false\n" +
		"Fork: false\n" +
		"Stars: 80\n" +
		"Watchers: 80\n" +
		"Size: 108 KB\n" +
		"Visibility: public\n" +
		"Last Updated: 2024-01-15T10:30:00Z\n" +
		"Topics: octocat, api\n"
	if !strings.HasPrefix(out, wantFirst) {
		t.Errorf("detailed output = %q, want prefix %q", out, wantFirst)
	}

	// Missing fields render as zeros and empty strings.
	if !strings.Contains(out, "Name: bare-repo\nDescription: \n") {
		t.Errorf("detailed output missing total rendering of bare record: %q", out)
	}
	if !strings.Contains(out, "Stars: 0\n") {
		t.Errorf("detailed output should render missing star count as 0: %q", out)
	}

	if got := strings.Count(out, detailedSeparator); got != 2 {
		t.Errorf("found %d separators, want 2", got)
	}
}

func TestRenderJSONPreservesEverything(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, FormatJSON, sampleRecords(t)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := sb.String()

	// Every original field survives, including ones no other format reads.
	for _, key := range []string{`"html_url"`, `"watchers_count"`, `"topics"`, `"visibility"`} {
		if !strings.Contains(out, key) {
			t.Errorf("json output dropped %s: %q", key, out)
		}
	}

	// Field order follows the payload: name before description.
	if strings.Index(out, `"name"`) > strings.Index(out, `"description"`) {
		t.Errorf("json output reordered fields: %q", out)
	}
}

func TestRenderEmptyList(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatDefault, ""},
		{FormatDetailed, ""},
		{FormatCompact, ""},
		{FormatJSON, "[]\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var sb strings.Builder
			if err := Render(&sb, tt.format, nil); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if sb.String() != tt.want {
				t.Errorf("output = %q, want %q", sb.String(), tt.want)
			}
		})
	}
}
