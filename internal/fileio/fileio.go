// Package fileio opens the generator's input and output files.
// Paths ending in ".lz4" are read and written as lz4 frames.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// ErrLocked is returned when another process holds the output file
var ErrLocked = errors.New("file is locked by another writer")

const bufferSize = 64 << 10

// IsCompressed reports whether path names an lz4 frame file
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".lz4")
}

// Writer is an output file held under an exclusive lock for the
// duration of a write. Close must be called on every path.
type Writer struct {
	f   *os.File
	lz  *lz4.Writer
	buf *bufio.Writer
}

// Create opens path for writing, creating parent directories and
// discarding any previous content.
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	// Truncate only after the lock is held so a concurrent writer's
	// output is never clobbered.
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Truncate(0); err != nil {
		unlockFile(f)
		f.Close()
		return nil, err
	}

	w := &Writer{f: f}
	var dst io.Writer = f
	if IsCompressed(path) {
		w.lz = lz4.NewWriter(f)
		dst = w.lz
	}
	w.buf = bufio.NewWriterSize(dst, bufferSize)

	return w, nil
}

// Write implements io.Writer
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// WriteString implements io.StringWriter
func (w *Writer) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

// Close flushes buffered data, finishes the lz4 frame, releases the
// lock and closes the file. Every step runs even if an earlier one fails.
func (w *Writer) Close() error {
	var errs []error
	errs = append(errs, w.buf.Flush())
	if w.lz != nil {
		errs = append(errs, w.lz.Close())
	}
	errs = append(errs, unlockFile(w.f), w.f.Close())
	return errors.Join(errs...)
}

type readCloser struct {
	io.Reader
	io.Closer
}

// Open opens path for reading, decompressing lz4 frames transparently
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !IsCompressed(path) {
		return f, nil
	}

	return readCloser{Reader: lz4.NewReader(f), Closer: f}, nil
}
