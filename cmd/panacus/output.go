package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dd0wney/panacus-go/pkg/sink"
)

// openOutput resolves --output to a writer: stdout when empty, otherwise a
// file wrapped by pkg/sink (which applies snappy compression when requested
// or the path ends ".snappy"). The returned close func is a no-op for
// stdout.
func openOutput(path string, compress bool) (io.Writer, func() error, error) {
	if path == "" {
		bw := bufio.NewWriter(os.Stdout)
		return bw, bw.Flush, nil
	}
	w, err := sink.Writer(path, compress)
	if err != nil {
		return nil, nil, err
	}
	return w, w.Close, nil
}

// writeInvocationComment writes the verbatim-invocation comment line the
// spec requires ahead of every TSV artefact (spec §6 Outputs).
func writeInvocationComment(w io.Writer, invocationText string) error {
	_, err := fmt.Fprintf(w, "# %s\n", invocationText)
	return err
}

func openOptionalFile(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, nil
	}
	return os.Open(path)
}

func closeIfSet(c io.Closer) {
	if c != nil {
		c.Close()
	}
}
