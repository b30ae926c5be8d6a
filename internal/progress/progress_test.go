package progress

import (
	"errors"
	"strings"
	"testing"
)

func TestWriterReporterLines(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "page started",
			event: PageStarted(3),
			want:  "Fetching page 3...\n",
		},
		{
			name:  "page completed",
			event: PageCompleted(2, 50, 150),
			want:  "Retrieved 50 repositories from page 2\n",
		},
		{
			name:  "page limit reached",
			event: PageLimitReached(5),
			want:  "Reached page limit (5)\n",
		},
		{
			name:  "record limit reached",
			event: RecordLimitReached(30),
			want:  "Reached repository limit (30)\n",
		},
		{
			name:  "finished",
			event: Finished(150),
			want:  "Total repositories fetched: 150\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			NewWriterReporter(&sb).Report(tt.event)
			if got := sb.String(); got != tt.want {
				t.Errorf("Report() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

// failingWriter always errors, standing in for a closed diagnostic stream.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestWriterReporterSwallowsWriteErrors(t *testing.T) {
	r := NewWriterReporter(failingWriter{})
	// Must not panic; Report has no error to return.
	r.Report(PageStarted(1))
	r.Report(Finished(0))
}

func TestNopReporter(t *testing.T) {
	NopReporter{}.Report(PageCompleted(1, 10, 10))
}
