// Novel output file handling. The novel is a flat append-only text
// artifact, truncated at run start and flushed on close.
package journey

import (
	"bufio"
	"fmt"
	"os"
)

// Novel writes day entries to the output file.
type Novel struct {
	f *os.File
	w *bufio.Writer
}

// CreateNovel creates (or truncates) the novel file at path.
func CreateNovel(path string) (*Novel, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create novel file: %w", err)
	}
	return &Novel{f: f, w: bufio.NewWriter(f)}, nil
}

// WriteEntry appends one entry block followed by a blank line.
func (n *Novel) WriteEntry(text string) error {
	if _, err := n.w.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

// Close flushes and closes the file. Safe to call after a failed run;
// whatever was written stays intact.
func (n *Novel) Close() error {
	flushErr := n.w.Flush()
	closeErr := n.f.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
