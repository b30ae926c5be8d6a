package record

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

const samplePayload = `[
  {
    "id": 1296269,
    "name": "hello-world",
    "full_name": "octocat/hello-world",
    "private": false,
    "html_url": "https://github.com/octocat/hello-world",
    "description": "My first repository",
    "fork": false,
    "stargazers_count": 80,
    "watchers_count": 80,
    "size": 108,
    "visibility": "public",
    "updated_at": "2024-01-15T10:30:00Z",
    "topics": ["octocat", "api"],
    "license": null,
    "owner": {"login": "octocat", "id": 1},
    "score": 1.50
  }
]`

func TestDecodePage(t *testing.T) {
	records, err := DecodePage(strings.NewReader(samplePayload))
	if err != nil {
		t.Fatalf("DecodePage() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("DecodePage() returned %d records, want 1", len(records))
	}

	r := records[0]

	// Field order must match the payload.
	wantKeys := []string{
		"id", "name", "full_name", "private", "html_url", "description",
		"fork", "stargazers_count", "watchers_count", "size", "visibility",
		"updated_at", "topics", "license", "owner", "score",
	}
	var gotKeys []string
	for _, f := range r.Fields() {
		gotKeys = append(gotKeys, f.Key)
	}
	if !reflect.DeepEqual(gotKeys, wantKeys) {
		t.Errorf("field order = %v, want %v", gotKeys, wantKeys)
	}

	if got := r.String("name"); got != "hello-world" {
		t.Errorf("String(name) = %q, want %q", got, "hello-world")
	}
	if got := r.Int("stargazers_count"); got != 80 {
		t.Errorf("Int(stargazers_count) = %d, want 80", got)
	}
	if got := r.Bool("private"); got != false {
		t.Errorf("Bool(private) = %v, want false", got)
	}
	if got := r.Strings("topics"); !reflect.DeepEqual(got, []string{"octocat", "api"}) {
		t.Errorf("Strings(topics) = %v, want [octocat api]", got)
	}

	owner, ok := r.Get("owner")
	if !ok || owner.Kind != KindObject {
		t.Fatalf("Get(owner) = %v, %v, want object", owner, ok)
	}
	if got := owner.Obj.String("login"); got != "octocat" {
		t.Errorf("owner login = %q, want %q", got, "octocat")
	}

	lic, ok := r.Get("license")
	if !ok || lic.Kind != KindNull {
		t.Errorf("Get(license) = %v, %v, want null", lic, ok)
	}
}

func TestAccessorsAreTotal(t *testing.T) {
	var r Record
	if err := json.Unmarshal([]byte(`{"name": 42, "fork": "yes"}`), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	// Absent fields.
	if got := r.String("description"); got != "" {
		t.Errorf("String(description) = %q, want empty", got)
	}
	if got := r.Int("stargazers_count"); got != 0 {
		t.Errorf("Int(stargazers_count) = %d, want 0", got)
	}
	if got := r.Bool("private"); got != false {
		t.Errorf("Bool(private) = %v, want false", got)
	}
	if got := r.Strings("topics"); got != nil {
		t.Errorf("Strings(topics) = %v, want nil", got)
	}

	// Fields of the wrong type degrade to zero values.
	if got := r.String("name"); got != "" {
		t.Errorf("String(name) = %q, want empty for numeric field", got)
	}
	if got := r.Bool("fork"); got != false {
		t.Errorf("Bool(fork) = %v, want false for string field", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	records, err := DecodePage(strings.NewReader(samplePayload))
	if err != nil {
		t.Fatalf("DecodePage() error = %v", err)
	}

	got, err := json.Marshal(records[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, []byte(samplePayload)); err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
	// The payload is a one-element array; strip the brackets.
	want := strings.TrimSuffix(strings.TrimPrefix(compacted.String(), "["), "]")

	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	// The numeric literal must survive verbatim, not be re-formatted.
	if !strings.Contains(string(got), `"score":1.50`) {
		t.Errorf("Marshal() re-formatted numeric literal: %s", got)
	}
}

func TestUnmarshalRejectsNonObject(t *testing.T) {
	var r Record
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &r); err == nil {
		t.Error("Unmarshal() accepted a JSON array, want error")
	}
}

func TestDecodePageRejectsNonArray(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"object payload", `{"message": "ok"}`},
		{"scalar payload", `42`},
		{"non-object element", `[1, 2]`},
		{"truncated payload", `[{"name": "a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePage(strings.NewReader(tt.payload)); err == nil {
				t.Errorf("DecodePage(%q) succeeded, want error", tt.payload)
			}
		})
	}
}

func TestDecodePageEmptyArray(t *testing.T) {
	records, err := DecodePage(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("DecodePage() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("DecodePage() returned %d records, want 0", len(records))
	}
}

func TestNewAndValueHelpers(t *testing.T) {
	r := New(
		Field{Key: "name", Value: StringValue("demo")},
		Field{Key: "stargazers_count", Value: NumberValue(7)},
		Field{Key: "fork", Value: BoolValue(true)},
	)

	if got := r.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := r.String("name"); got != "demo" {
		t.Errorf("String(name) = %q, want demo", got)
	}
	if got := r.Int("stargazers_count"); got != 7 {
		t.Errorf("Int(stargazers_count) = %d, want 7", got)
	}
	if !r.Bool("fork") {
		t.Error("Bool(fork) = false, want true")
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"name":"demo","stargazers_count":7,"fork":true}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
