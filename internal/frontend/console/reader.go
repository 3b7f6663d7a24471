package console

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/cory-johannsen/breakfast-run/internal/engine"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 64 * 1024

// Reader reads one command per line from an input stream.
type Reader struct {
	src   io.Reader
	buf   *bufio.Reader
	limit int
}

// NewReader wraps src for line-based reading.
//
// Precondition: src must be non-nil.
func NewReader(src io.Reader) *Reader {
	return newReaderSize(src, maxLineBytes)
}

func newReaderSize(src io.Reader, limit int) *Reader {
	return &Reader{src: src, buf: bufio.NewReaderSize(src, 4096), limit: limit}
}

// ReadLine blocks for the next line. The returned line has no line
// terminator and no control characters other than tab. A line longer than
// the limit is consumed through its terminator and reported as
// engine.ErrLineTooLong, after which reading continues with the next line.
//
// Postcondition: Returns the next line, or io.EOF once input is exhausted.
func (r *Reader) ReadLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, err := r.buf.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > r.limit+2 {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if errors.Is(err, io.EOF) && len(chunk) == 0 && len(line) == 0 && !tooLong {
			return "", io.EOF
		}
		break
	}
	if tooLong {
		return "", engine.ErrLineTooLong
	}
	s := strings.TrimSuffix(string(line), "\n")
	s = strings.TrimSuffix(s, "\r")
	if len(s) > r.limit {
		return "", engine.ErrLineTooLong
	}
	return stripControl(s), nil
}

// Close closes the underlying stream if it is closable, unblocking a
// pending ReadLine.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// stripControl drops control characters except tab.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return -1
		}
		if r == 127 {
			return -1
		}
		return r
	}, s)
}
