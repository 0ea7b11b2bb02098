// Package source abstracts the indexer's and builder's "a byte stream"
// input (spec §4.1, §6) over three origins: a local path, stdin, and an
// s3://bucket/key URI. The two-pass design (spec §4) needs the stream
// re-openable — pass 1 and pass 2 each request a fresh io.ReadCloser — so
// Source is a factory, not a single reader.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Source produces a fresh, independently-readable stream of the same GFA
// bytes on every call to Open, letting the indexer (pass 1) and the
// builder (pass 2) each read the input from the start.
type Source interface {
	Open() (io.ReadCloser, error)
	fmt.Stringer
}

// Open resolves uri to a Source: "-" means stdin, "s3://bucket/key" means
// S3, anything else is treated as a local filesystem path.
func Open(uri string) (Source, error) {
	switch {
	case uri == "-" || uri == "":
		return &stdinSource{}, nil
	case strings.HasPrefix(uri, "s3://"):
		return newS3Source(uri)
	default:
		if m, err := newMmapSource(uri); err == nil {
			return m, nil
		}
		return fileSource{path: uri}, nil
	}
}

// fileSource re-opens a local path on every Open call.
type fileSource struct{ path string }

func (f fileSource) Open() (io.ReadCloser, error) { return os.Open(f.path) }
func (f fileSource) String() string               { return f.path }

// stdinSource buffers stdin into memory on first Open, since stdin itself
// is not seekable and the two-pass design needs a fresh reader each pass.
type stdinSource struct {
	once sync.Once
	data []byte
	err  error
}

func (s *stdinSource) Open() (io.ReadCloser, error) {
	s.once.Do(func() {
		s.data, s.err = io.ReadAll(os.Stdin)
	})
	if s.err != nil {
		return nil, fmt.Errorf("source: reading stdin: %w", s.err)
	}
	return io.NopCloser(bytes.NewReader(s.data)), nil
}
func (*stdinSource) String() string { return "-" }
