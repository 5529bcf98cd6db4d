package likegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Open, read or write failure on an input or output file
	ErrFileAccess = errors.New("file access error")

	// Input that prevents generation (empty name list, bad bounds)
	ErrInput = errors.New("input error")

	// Configuration rejected by Config.Validate
	ErrInvalidConfig = errors.New("invalid config")
)

// FileError records a failed file operation and the path it touched.
// It matches ErrFileAccess with errors.Is.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{ErrFileAccess, e.Err}
}

func fileError(op, path string, err error) error {
	return &FileError{Op: op, Path: path, Err: err}
}
