package logsource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tinytelemetry/warnsum/internal/model"
)

// LineFunc receives one input line without its line terminator.
type LineFunc func(lineNo int, line string)

// SkipFunc is told about a line dropped for exceeding the max line size.
type SkipFunc func(lineNo, size int)

// ScanLines reads r line by line and calls fn for each line in order.
// Lines longer than maxLineSize bytes are not buffered: they are passed to
// skip (which may be nil) and scanning continues with the next line.
// A non-positive maxLineSize selects model.DefaultMaxLineSize.
// The scan stops early with ctx.Err() when ctx is cancelled.
func ScanLines(ctx context.Context, r io.Reader, maxLineSize int, fn LineFunc, skip SkipFunc) error {
	if maxLineSize <= 0 {
		maxLineSize = model.DefaultMaxLineSize
	}

	reader := bufio.NewReaderSize(r, min(maxLineSize, 64*1024))

	var (
		buf     []byte
		size    int
		tooLong bool
		lineNo  int
	)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frag, isPrefix, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w: %w", ErrInputUnreadable, err)
		}

		size += len(frag)
		switch {
		case tooLong:
		case size > maxLineSize:
			tooLong = true
			buf = buf[:0]
		default:
			buf = append(buf, frag...)
		}
		if isPrefix {
			continue
		}

		lineNo++
		if tooLong {
			if skip != nil {
				skip(lineNo, size)
			}
		} else {
			fn(lineNo, string(buf))
		}
		buf, size, tooLong = buf[:0], 0, false
	}
}
