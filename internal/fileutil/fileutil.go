// Package fileutil provides file and stream helpers for the converter.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdioPath selects standard input or output instead of a file.
const StdioPath = "-"

// FilePermissions is the mode for created output files (rw-r--r--).
const FilePermissions = 0o644

// ErrInvalidPath indicates a path argument that is empty or does not name a
// regular file.
var ErrInvalidPath = errors.New("invalid path")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFileContent reads a whole file as UTF-8 text.
// Returns ErrInvalidPath unless path names an existing regular file.
// The handle is closed on every path, including read failures.
func ReadFileContent(path string) (content string, err error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if !FileExists(path) {
		return "", fmt.Errorf("%w: %q is not an existing file", ErrInvalidPath, path)
	}

	f, err := os.Open(path) // #nosec G304 -- caller-provided path, existence checked
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// OpenInput opens path for reading. StdioPath returns standard input wrapped
// so that closing it leaves the process stdin open.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty input path", ErrInvalidPath)
	}
	if path == StdioPath {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path) // #nosec G304 -- caller-provided input path
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateOutput creates or truncates path for writing. StdioPath returns
// standard output wrapped so that closing it leaves the process stdout open.
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty output path", ErrInvalidPath)
	}
	if path == StdioPath {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions) // #nosec G304 -- caller-provided output path
	if err != nil {
		return nil, err
	}
	return f, nil
}

// SamePath reports whether a and b name the same file. Existing files are
// compared with os.SameFile so links are resolved; otherwise the cleaned
// absolute paths are compared. StdioPath never matches.
func SamePath(a, b string) bool {
	if a == StdioPath || b == StdioPath {
		return false
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(infoA, infoB)
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
