// Package output resolves where rendered output goes: stdout by default, or
// a file when the user asks for one. Progress never goes here; it stays on
// the diagnostic stream.
package output

import (
	"fmt"
	"io"
	"os"
)

// nopCloser wraps stdout so callers can close the destination unconditionally.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Open returns the destination for rendered output. An empty path selects
// stdout. Closing the returned writer is always safe; stdout itself is never
// closed.
func Open(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}
