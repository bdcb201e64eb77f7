package csview

import (
	"fmt"
	"io"
	"os"
)

const initialRowCap = 10

// Document is the in-memory representation of a delimiter-separated dataset:
// an optional header plus data rows in source order.
//
// Columns is fixed by the header's field count if a header was parsed,
// otherwise by the first data row's. Later rows are not required to match it;
// ragged rows are kept with their true field counts and consumers decide how
// to handle the difference.
type Document struct {
	// Header holds the header fields. It is non-nil iff header parsing was
	// requested and the source had at least one line.
	Header []string
	// Rows holds the data rows in source line order.
	Rows [][]string
	// Columns is the column count used for alignment and summaries.
	Columns int
}

// HasHeader reports whether the document carries a header row.
func (d *Document) HasHeader() bool {
	return d != nil && d.Header != nil
}

// Release drops every row, field, and header reference held by the document,
// returning it to the empty state. It is a no-op on a nil document and calling
// it more than once is safe.
func (d *Document) Release() {
	if d == nil {
		return
	}
	d.Header = nil
	d.Rows = nil
	d.Columns = 0
}

// Parse reads delimiter-separated text from r into a Document. When hasHeader
// is set, exactly one line is consumed for the header, even if it is empty.
// Blank lines in the body produce no row. Rows never fail to parse; malformed
// quoting degrades to a best-effort split (see [SplitLine]).
//
// A read error stops accumulation but does not discard rows already parsed:
// the partial Document is returned together with the error.
//
// Lines are capped at [DefaultMaxLineLen]; use [ParseLimit] for a different
// cap.
func Parse(r io.Reader, hasHeader bool) (*Document, error) {
	return ParseLimit(r, hasHeader, DefaultMaxLineLen)
}

// ParseLimit is like [Parse] but caps each line at maxLineLen bytes: content
// past maxLineLen-1 is silently discarded. A non-positive maxLineLen falls
// back to [DefaultMaxLineLen].
func ParseLimit(r io.Reader, hasHeader bool, maxLineLen int) (*Document, error) {
	doc := &Document{Rows: make([][]string, 0, initialRowCap)}
	lr := NewLineReader(r)

	if hasHeader {
		line, err := lr.ReadLine(maxLineLen)
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return doc, err
		}
		doc.Header = SplitLine(line)
		doc.Columns = len(doc.Header)
	}

	for {
		line, err := lr.ReadLine(maxLineLen)
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return doc, err
		}
		if line == "" {
			continue
		}
		row := SplitLine(line)
		doc.Rows = append(doc.Rows, row)
		if doc.Header == nil && doc.Columns == 0 {
			doc.Columns = len(row)
		}
	}
}

// ParseFile opens path for reading and parses it via [Parse]. Pair a
// successful ParseFile with doc.Release, typically deferred:
//
//	doc, err := csview.ParseFile("data.csv", true)
//	if err != nil {
//		return err
//	}
//	defer doc.Release()
func ParseFile(path string, hasHeader bool) (*Document, error) {
	return ParseFileLimit(path, hasHeader, DefaultMaxLineLen)
}

// ParseFileLimit is like [ParseFile] but caps each line at maxLineLen bytes
// (see [ParseLimit]).
func ParseFileLimit(path string, hasHeader bool, maxLineLen int) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseLimit(f, hasHeader, maxLineLen)
}
