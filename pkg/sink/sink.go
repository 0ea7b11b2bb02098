// Package sink writes the terminal artefacts spec.md §6 describes
// (histogram, growth, table TSVs), wrapping them with an optional
// streaming snappy encoder and, optionally, persisting growth/histogram
// curves into Postgres for cross-run querying.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// Writer returns a buffered writer over path, wrapped in a streaming
// snappy encoder when path ends in ".snappy" or compress is requested
// (SPEC_FULL §3). Callers must Close the returned io.WriteCloser.
func Writer(path string, compress bool) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sink: creating %s: %w", path, err)
	}
	if compress || strings.HasSuffix(path, ".snappy") {
		return &snappyWriteCloser{enc: snappy.NewBufferedWriter(f), file: f}, nil
	}
	return &bufferedWriteCloser{w: bufio.NewWriter(f), file: f}, nil
}

type snappyWriteCloser struct {
	enc  *snappy.Writer
	file *os.File
}

func (s *snappyWriteCloser) Write(p []byte) (int, error) { return s.enc.Write(p) }
func (s *snappyWriteCloser) Close() error {
	if err := s.enc.Close(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}

type bufferedWriteCloser struct {
	w    *bufio.Writer
	file *os.File
}

func (b *bufferedWriteCloser) Write(p []byte) (int, error) { return b.w.Write(p) }
func (b *bufferedWriteCloser) Close() error {
	if err := b.w.Flush(); err != nil {
		b.file.Close()
		return err
	}
	return b.file.Close()
}
