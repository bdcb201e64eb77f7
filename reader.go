package csview

import (
	"bytes"
	"io"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

// maxConsecutiveEmptyReads bounds how many zero-byte, nil-error reads the
// source may return in a row before ReadLine gives up with io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// DefaultMaxLineLen is the line length cap used by [Parse]. A physical line
// longer than DefaultMaxLineLen-1 bytes is truncated at the cap and the
// remainder up to the newline is consumed and discarded.
const DefaultMaxLineLen = 1024

// LineReader presents a byte stream as a sequence of newline-delimited lines,
// managing read buffering internally. Refills are synchronous; there is no
// lookahead beyond the current buffer.
type LineReader struct {
	src io.Reader

	buf []byte
	pos int
	n   int
	err error
}

// NewLineReader creates a LineReader over r, panicking if r is nil.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		panic("csview: line reader source cannot be nil")
	}
	return &LineReader{
		src: r,
		buf: make([]byte, defaultBufferSize),
	}
}

// ReadLine returns the next line without its terminator. Carriage returns are
// dropped and content past max-1 bytes is silently discarded, though the full
// physical line is always consumed. A non-positive max falls back to
// [DefaultMaxLineLen].
//
// ReadLine returns io.EOF once the stream is exhausted and no bytes were read
// into the line. A final line without a trailing newline is still returned.
// A source that keeps returning zero bytes without an error yields
// io.ErrNoProgress.
func (lr *LineReader) ReadLine(max int) (string, error) {
	if max <= 0 {
		max = DefaultMaxLineLen
	}

	line := make([]byte, 0, 64)
	read := false
	emptyReads := 0

	for {
		// Ensure the working buffer has data before scanning for the terminator.
		if lr.pos >= lr.n {
			if lr.err != nil {
				if lr.err == io.EOF {
					if read {
						return string(line), nil
					}
					return "", io.EOF
				}
				return "", lr.err
			}

			n, err := lr.src.Read(lr.buf)
			if n == 0 {
				if err != nil {
					lr.err = err
					continue
				}
				emptyReads++
				if emptyReads >= maxConsecutiveEmptyReads {
					lr.err = io.ErrNoProgress
				}
				continue
			}
			emptyReads = 0
			lr.pos = 0
			lr.n = n
			lr.err = err
		}

		data := lr.buf[lr.pos:lr.n]
		idx := bytes.IndexByte(data, '\n')
		chunk := data
		if idx >= 0 {
			chunk = data[:idx]
		}
		if len(chunk) > 0 || idx >= 0 {
			read = true
		}

		for _, b := range chunk {
			if b == '\r' {
				continue
			}
			if len(line) < max-1 {
				line = append(line, b)
			}
		}

		if idx >= 0 {
			lr.pos += idx + 1
			return string(line), nil
		}
		lr.pos = lr.n
	}
}
