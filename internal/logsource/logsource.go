package logsource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

var (
	// ErrInputNotFound reports that the input file does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrInputUnreadable reports that the input exists but cannot be read.
	ErrInputUnreadable = errors.New("input unreadable")
)

// Open opens the log at path for reading. StdinPath selects standard input,
// which is wrapped so closing it is a no-op.
func Open(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read file `%s`: %w: %w", path, ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("could not read file `%s`: %w: %w", path, ErrInputUnreadable, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not read file `%s`: %w: %w", path, ErrInputUnreadable, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("could not read file `%s`: %w: is a directory", path, ErrInputUnreadable)
	}
	return f, nil
}

// Name returns the source name used in diagnostics for path.
func Name(path string) string {
	if path == StdinPath {
		return "stdin"
	}
	return path
}
